package catalog

import (
	"testing"

	"sena/models"
)

func TestPickActiveRuleLowestIDWins(t *testing.T) {
	rules := []models.PriceRule{
		{RuleID: "pr9", DeskTypeID: "dt1", SlotID: "s1", Price: 90, IsActive: true},
		{RuleID: "pr2", DeskTypeID: "dt1", SlotID: "s1", Price: 20, IsActive: true},
		{RuleID: "pr5", DeskTypeID: "dt1", SlotID: "s1", Price: 50, IsActive: true},
	}

	picked := PickActiveRule(rules)
	if picked == nil {
		t.Fatal("expected a rule, got nil")
	}
	if picked.RuleID != "pr2" {
		t.Fatalf("expected pr2 to win, got %s", picked.RuleID)
	}
}

func TestPickActiveRuleSkipsInactive(t *testing.T) {
	rules := []models.PriceRule{
		{RuleID: "pr1", Price: 10, IsActive: false},
		{RuleID: "pr3", Price: 30, IsActive: true},
	}

	picked := PickActiveRule(rules)
	if picked == nil || picked.RuleID != "pr3" {
		t.Fatalf("expected pr3, got %+v", picked)
	}
}

func TestPickActiveRuleEmpty(t *testing.T) {
	if got := PickActiveRule(nil); got != nil {
		t.Fatalf("expected nil for no rules, got %+v", got)
	}
	inactive := []models.PriceRule{{RuleID: "pr1", IsActive: false}}
	if got := PickActiveRule(inactive); got != nil {
		t.Fatalf("expected nil for all-inactive rules, got %+v", got)
	}
}
