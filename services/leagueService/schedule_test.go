package leagueService

import (
	"errors"
	"testing"

	"parlayLeague/common/apperrors"
	"parlayLeague/models"
)

func TestRoundRobinEvenMembers(t *testing.T) {
	members := []uint{1, 2, 3, 4}
	rounds := RoundRobin(members, 3)
	if len(rounds) != 3 {
		t.Fatalf("rounds = %d, expected 3", len(rounds))
	}

	seenPairs := make(map[[2]uint]bool)
	for week, pairings := range rounds {
		if len(pairings) != 2 {
			t.Fatalf("week %d has %d pairings, expected 2", week+1, len(pairings))
		}
		playing := make(map[uint]bool)
		for _, p := range pairings {
			if p.User1 == p.User2 {
				t.Fatalf("week %d pairs %d with itself", week+1, p.User1)
			}
			if playing[p.User1] || playing[p.User2] {
				t.Fatalf("week %d schedules a member twice", week+1)
			}
			playing[p.User1] = true
			playing[p.User2] = true

			key := [2]uint{p.User1, p.User2}
			if p.User2 < p.User1 {
				key = [2]uint{p.User2, p.User1}
			}
			if seenPairs[key] {
				t.Fatalf("pair %v repeats inside one cycle", key)
			}
			seenPairs[key] = true
		}
	}
	// 4 members over 3 weeks cover all C(4,2) pairs.
	if len(seenPairs) != 6 {
		t.Errorf("distinct pairs = %d, expected 6", len(seenPairs))
	}
}

func TestRoundRobinOddMembersGetByes(t *testing.T) {
	members := []uint{1, 2, 3}
	rounds := RoundRobin(members, 3)
	if len(rounds) != 3 {
		t.Fatalf("rounds = %d, expected 3", len(rounds))
	}

	byes := make(map[uint]int)
	for week, pairings := range rounds {
		if len(pairings) != 1 {
			t.Fatalf("week %d has %d pairings, expected 1 with a bye", week+1, len(pairings))
		}
		playing := map[uint]bool{pairings[0].User1: true, pairings[0].User2: true}
		for _, id := range members {
			if !playing[id] {
				byes[id]++
			}
		}
	}
	for _, id := range members {
		if byes[id] != 1 {
			t.Errorf("member %d has %d byes over the cycle, expected 1", id, byes[id])
		}
	}
}

func TestRoundRobinRepeatsCycle(t *testing.T) {
	rounds := RoundRobin([]uint{1, 2}, 4)
	if len(rounds) != 4 {
		t.Fatalf("rounds = %d, expected 4", len(rounds))
	}
	for week, pairings := range rounds {
		if len(pairings) != 1 {
			t.Fatalf("week %d has %d pairings, expected 1", week+1, len(pairings))
		}
	}
}

func TestRoundRobinTooFewMembers(t *testing.T) {
	if rounds := RoundRobin([]uint{1}, 5); rounds != nil {
		t.Errorf("expected nil schedule for a single member, got %v", rounds)
	}
}

func TestGenerateSchedule(t *testing.T) {
	db := testDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	league, err := CreateLeague(db, "Test", alice.ID)
	if err != nil {
		t.Fatalf("CreateLeague: %v", err)
	}
	if _, err := JoinLeague(db, league.InviteCode, bob.ID); err != nil {
		t.Fatalf("JoinLeague: %v", err)
	}

	matchups, err := GenerateSchedule(db, league.ID, alice.ID, 4)
	if err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}
	if len(matchups) != 4 {
		t.Fatalf("matchups = %d, expected 4 (two members, four weeks)", len(matchups))
	}
	for i, m := range matchups {
		if m.Week != i+1 {
			t.Errorf("matchup %d in week %d, expected %d", i, m.Week, i+1)
		}
	}

	var updated models.League
	db.First(&updated, league.ID)
	if updated.ScheduleWeeks != 4 {
		t.Errorf("schedule_weeks = %d, expected 4", updated.ScheduleWeeks)
	}

	// Regeneration is refused once a schedule exists.
	_, err = GenerateSchedule(db, league.ID, alice.ID, 4)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected ErrConflict on regenerate, got %v", err)
	}
}

func TestGenerateScheduleCommissionerOnly(t *testing.T) {
	db := testDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	league, _ := CreateLeague(db, "Test", alice.ID)
	if _, err := JoinLeague(db, league.InviteCode, bob.ID); err != nil {
		t.Fatal(err)
	}

	_, err := GenerateSchedule(db, league.ID, bob.ID, 4)
	if !errors.Is(err, apperrors.ErrInvalidMatchup) {
		t.Fatalf("expected ErrInvalidMatchup for non-commissioner, got %v", err)
	}
}

func TestGenerateScheduleNeedsTwoMembers(t *testing.T) {
	db := testDB(t)
	alice := seedUser(t, db, "alice")
	league, _ := CreateLeague(db, "Test", alice.ID)

	if _, err := GenerateSchedule(db, league.ID, alice.ID, 4); err == nil {
		t.Fatal("expected error scheduling a one-member league")
	}
}
