package models

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{StatusPending, StatusUnderReview},
		{StatusPending, StatusRejected},
		{StatusUnderReview, StatusApproved},
		{StatusUnderReview, StatusRejected},
		{StatusApproved, StatusSettled},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Fatalf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to string }{
		{StatusPending, StatusApproved},
		{StatusPending, StatusSettled},
		{StatusUnderReview, StatusSettled},
		{StatusUnderReview, StatusPending},
		{StatusApproved, StatusRejected},
		{StatusApproved, StatusPending},
		{StatusRejected, StatusSettled},
		{StatusRejected, StatusUnderReview},
		{StatusSettled, StatusApproved},
		{StatusSettled, StatusPending},
		{StatusPending, StatusPending},
		{"bogus", StatusApproved},
	}
	for _, tc := range denied {
		if CanTransition(tc.from, tc.to) {
			t.Fatalf("expected %s -> %s to be denied", tc.from, tc.to)
		}
	}
}

func TestRejectedAndSettledAreTerminal(t *testing.T) {
	all := []string{StatusPending, StatusUnderReview, StatusApproved, StatusRejected, StatusSettled}
	for _, to := range all {
		if CanTransition(StatusRejected, to) {
			t.Fatalf("rejected must be terminal, but rejected -> %s allowed", to)
		}
		if CanTransition(StatusSettled, to) {
			t.Fatalf("settled must be terminal, but settled -> %s allowed", to)
		}
	}
}
