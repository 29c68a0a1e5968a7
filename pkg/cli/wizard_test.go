package cli_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The wizard tests drive "ratecard quote" with scripted stdin
// transcripts and assert on the printed workflow and the final
// result line.

func TestWizard_HappyPath(t *testing.T) {
	stdin := strings.Join([]string{
		"Premium", // plan by name
		"2",       // members
		"1",       // toggle Personal Training on
		"done",
		"1", // premium level: none
		"yes",
	}, "\n") + "\n"

	code, stdout, _ := run(t, stdin, "quote")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "WELCOME TO GYM MEMBERSHIP MANAGEMENT SYSTEM")
	assert.Contains(t, stdout, "Available Membership Plans:")
	assert.Contains(t, stdout, "1. Basic ($29.99) - Benefits: Access to gym equipment, Basic locker room access")
	assert.Contains(t, stdout, "Available Additional Features:")
	assert.Contains(t, stdout, "Added: Personal Training")
	assert.Contains(t, stdout, "GROUP SAVINGS: Save $6.00 with 2 members (10% discount)!")
	assert.Contains(t, stdout, "MEMBERSHIP SUMMARY")
	assert.Contains(t, stdout, "TOTAL COST:                  $     98.99")
	assert.Contains(t, stdout, "Membership confirmed! Total cost: $98.99")
	assert.True(t, strings.HasSuffix(stdout, "Result: 98\n"))
}

func TestWizard_PlanByNumber(t *testing.T) {
	stdin := "3\n1\ndone\n1\nyes\n"

	code, stdout, _ := run(t, stdin, "quote")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Membership Plan: Family")
	assert.Contains(t, stdout, "Result: 99")
}

func TestWizard_CancelAtPlan(t *testing.T) {
	code, stdout, _ := run(t, "cancel\n", "quote")

	assert.Equal(t, 0, code, "cancellation is a normal termination path")
	assert.Contains(t, stdout, "Membership selection canceled.")
	assert.True(t, strings.HasSuffix(stdout, "Result: -1\n"))
}

func TestWizard_CancelAtEveryStep(t *testing.T) {
	transcripts := map[string]string{
		"members":  "1\ncancel\n",
		"features": "1\n1\ncancel\n",
		"premium":  "1\n1\ndone\ncancel\n",
	}

	for step, stdin := range transcripts {
		code, stdout, _ := run(t, stdin, "quote")

		assert.Equal(t, 0, code, "step %s", step)
		assert.Contains(t, stdout, "Membership selection canceled.", "step %s", step)
		assert.Contains(t, stdout, "Result: -1", "step %s", step)
	}
}

func TestWizard_EOFCancels(t *testing.T) {
	code, stdout, _ := run(t, "", "quote")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Membership selection canceled.")
	assert.Contains(t, stdout, "Result: -1")
}

func TestWizard_DecliningRestartsSelection(t *testing.T) {
	stdin := strings.Join([]string{
		// first pass, declined at the confirm prompt
		"1", "1", "done", "1", "no",
		// second pass, confirmed
		"2", "1", "done", "1", "yes",
	}, "\n") + "\n"

	code, stdout, _ := run(t, stdin, "quote")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Membership selection canceled. Starting over...")
	assert.Contains(t, stdout, "Membership Plan: Premium")
	assert.True(t, strings.HasSuffix(stdout, "Result: 59\n"))
}

func TestWizard_RetriesInvalidInput(t *testing.T) {
	stdin := strings.Join([]string{
		"Platinum", // unknown plan name
		"9",        // menu number out of range
		"1",        // Basic
		"abc",      // not a number
		"0",        // below minimum
		"2",        // valid member count
		"99",       // feature number out of range
		"Massage",  // unknown feature name
		"done",
		"5", // invalid premium choice
		"1", // none
		"maybe",
		"yes",
	}, "\n") + "\n"

	code, stdout, _ := run(t, stdin, "quote")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Invalid membership plan. Please select from: Basic, Premium, Family")
	assert.Contains(t, stdout, "Invalid selection. Please enter a number between 1 and 3.")
	assert.Contains(t, stdout, "Please enter a valid number.")
	assert.Contains(t, stdout, "must be at least 1")
	assert.Contains(t, stdout, "Invalid feature. Please select from: Personal Training, Group Classes, Nutritional Consulting")
	assert.Contains(t, stdout, "Invalid selection. Please enter 1, 2, 3, or 'none'.")
	assert.Contains(t, stdout, "Please enter 'yes' or 'no'.")
	// Basic plan, 2 members: 29.99 -> group discount 3.00 -> 26.99.
	assert.Contains(t, stdout, "Result: 26")
}

func TestWizard_FeatureToggleRemoves(t *testing.T) {
	stdin := strings.Join([]string{
		"1", "1",
		"1",                 // add Personal Training
		"personal training", // toggle it back off, case-insensitive
		"done",
		"1", "yes",
	}, "\n") + "\n"

	code, stdout, _ := run(t, stdin, "quote")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Added: Personal Training")
	assert.Contains(t, stdout, "Removed: Personal Training")
	assert.Contains(t, stdout, "Currently selected features: None")
	assert.Contains(t, stdout, "Additional Features: None")
	assert.Contains(t, stdout, "Result: 29")
}

func TestWizard_PremiumLevelSurcharge(t *testing.T) {
	stdin := "3\n2\ndone\n3\nyes\n"

	code, stdout, _ := run(t, stdin, "quote")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Premium Level: Specialized Training")
	assert.Contains(t, stdout, "Premium Surcharge (15%)")
	// Family, 2 members: 99.99 -> after group 89.99 -> +15% -> 103.49.
	assert.Contains(t, stdout, "Result: 103")
}

func TestWizard_NoSavingsBannerForSingleMember(t *testing.T) {
	stdin := "1\n1\ndone\n1\nyes\n"

	code, stdout, _ := run(t, stdin, "quote")

	assert.Equal(t, 0, code)
	assert.NotContains(t, stdout, "GROUP SAVINGS")
	assert.Contains(t, stdout, "Result: 29")
}

func TestWizard_OverlayPlanSelectable(t *testing.T) {
	overlay := writeOverlay(t, `schema_version: "1.0"
plans:
  - name: Student
    base_cost: 19.99
    benefits: ["Access to gym equipment"]
    available: true
`)

	stdin := "Student\n1\ndone\n1\nyes\n"
	code, stdout, _ := run(t, stdin, "quote", "--catalog-file", overlay)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "4. Student ($19.99)")
	assert.Contains(t, stdout, "Result: 19")
}
