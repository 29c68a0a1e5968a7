package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ferrumfit/ratecard/pkg/catalog"
	"github.com/ferrumfit/ratecard/pkg/pricing"
)

// errCanceled signals that the user ended the workflow, by typing
// 'cancel' or by closing stdin. It is a normal termination path, not a
// failure.
var errCanceled = errors.New("selection canceled")

// wizard is the interactive membership selection workflow: plan,
// member count, feature toggles, premium level, then a confirm loop
// that restarts the whole selection on "no".
type wizard struct {
	app *App
	out io.Writer
}

func newWizard(a *App) *wizard {
	return &wizard{app: a, out: a.stdout}
}

func (w *wizard) run() (pricing.Selection, error) {
	for {
		w.app.styles.banner(w.out, "WELCOME TO GYM MEMBERSHIP MANAGEMENT SYSTEM")

		sel, err := w.collect()
		if err != nil {
			return pricing.Selection{}, err
		}

		// Menu-driven input should always validate; the check still runs
		// so an overlay that pulled a record mid-session cannot slip an
		// unavailable selection through.
		if err := w.app.engine.ValidateSelection(sel); err != nil {
			return pricing.Selection{}, err
		}

		summary, err := w.app.engine.Summary(sel)
		if err != nil {
			return pricing.Selection{}, err
		}
		fmt.Fprintln(w.out, summary)

		confirmed, err := w.app.askYesNo("Do you want to confirm this membership? (yes/no): ")
		if err != nil {
			return pricing.Selection{}, err
		}
		if confirmed {
			return sel, nil
		}
		fmt.Fprintln(w.out, "Membership selection canceled. Starting over...")
		fmt.Fprintln(w.out)
	}
}

func (w *wizard) collect() (pricing.Selection, error) {
	planName, err := w.selectPlan()
	if err != nil {
		return pricing.Selection{}, err
	}

	members, err := w.selectMembers()
	if err != nil {
		return pricing.Selection{}, err
	}

	features, err := w.selectFeatures()
	if err != nil {
		return pricing.Selection{}, err
	}

	w.showGroupSavings(planName, members)

	premium, err := w.selectPremium()
	if err != nil {
		return pricing.Selection{}, err
	}

	return pricing.Selection{
		PlanName: planName,
		Features: features,
		Members:  members,
		Premium:  premium,
	}, nil
}

// selectPlan shows the plan menu and accepts a name or menu number.
func (w *wizard) selectPlan() (string, error) {
	plans := w.app.catalog.AvailablePlans()

	fmt.Fprintln(w.out)
	w.app.styles.section(w.out, "Available Membership Plans:")
	for i, p := range plans {
		fmt.Fprintf(w.out, "%d. %s\n", i+1, p)
	}
	fmt.Fprintln(w.out)

	names := make([]string, len(plans))
	for i, p := range plans {
		names[i] = p.Name
	}

	for {
		input, err := w.readLine("Enter membership plan name or number (or 'cancel' to exit): ")
		if err != nil {
			return "", err
		}
		if strings.EqualFold(input, "cancel") {
			return "", errCanceled
		}

		if isDigits(input) {
			if name, ok := pickByNumber(names, input); ok {
				return name, nil
			}
			fmt.Fprintf(w.out, "Invalid selection. Please enter a number between 1 and %d.\n\n", len(names))
			continue
		}
		if name, ok := pickByName(names, input); ok {
			return name, nil
		}
		fmt.Fprintf(w.out, "Invalid membership plan. Please select from: %s\n\n", strings.Join(names, ", "))
	}
}

func (w *wizard) selectMembers() (int, error) {
	for {
		input, err := w.readLine("Enter number of members (1-10) or 'cancel' to exit: ")
		if err != nil {
			return 0, err
		}
		if strings.EqualFold(input, "cancel") {
			return 0, errCanceled
		}

		if !isDigits(input) {
			fmt.Fprintln(w.out, "Please enter a valid number.")
			fmt.Fprintln(w.out)
			continue
		}
		n, err := pricing.ParseMemberCount(input)
		if err != nil {
			fmt.Fprintf(w.out, "%s %v\n\n", w.app.styles.Error.Render("Error:"), err)
			continue
		}
		return n, nil
	}
}

// selectFeatures runs the toggle loop: entering a feature adds it,
// entering it again removes it, 'done' keeps the current set.
func (w *wizard) selectFeatures() ([]string, error) {
	features := w.app.catalog.AvailableFeatures()

	fmt.Fprintln(w.out)
	w.app.styles.section(w.out, "Available Additional Features:")
	for i, f := range features {
		fmt.Fprintf(w.out, "%d. %s\n", i+1, f)
	}
	fmt.Fprintln(w.out)

	names := make([]string, len(features))
	for i, f := range features {
		names[i] = f.Name
	}

	var selected []string
	for {
		fmt.Fprintf(w.out, "Currently selected features: %s\n", joinOrNone(selected))

		input, err := w.readLine("Enter feature name/number to add/remove, or 'done' to continue: ")
		if err != nil {
			return nil, err
		}
		switch {
		case strings.EqualFold(input, "done"):
			return selected, nil
		case strings.EqualFold(input, "cancel"):
			return nil, errCanceled
		}

		var name string
		if isDigits(input) {
			picked, ok := pickByNumber(names, input)
			if !ok {
				fmt.Fprintf(w.out, "Invalid selection. Please enter a number between 1 and %d.\n\n", len(names))
				continue
			}
			name = picked
		} else {
			picked, ok := pickByName(names, input)
			if !ok {
				fmt.Fprintf(w.out, "Invalid feature. Please select from: %s\n\n", strings.Join(names, ", "))
				continue
			}
			name = picked
		}

		if i := indexOf(selected, name); i >= 0 {
			selected = append(selected[:i], selected[i+1:]...)
			fmt.Fprintf(w.out, "Removed: %s\n\n", name)
		} else {
			selected = append(selected, name)
			fmt.Fprintf(w.out, "Added: %s\n\n", name)
		}
	}
}

// showGroupSavings prints the savings banner for group selections.
func (w *wizard) showGroupSavings(planName string, members int) {
	savings, err := w.app.engine.GroupSavings(planName, members)
	if err != nil || savings <= 0 {
		return
	}
	msg := fmt.Sprintf("💰 GROUP SAVINGS: Save $%.2f with %d members (10%% discount)!", savings, members)
	fmt.Fprintf(w.out, "\n%s\n\n", w.app.styles.Savings.Render(msg))
}

func (w *wizard) selectPremium() (catalog.PremiumLevel, error) {
	fmt.Fprintln(w.out)
	w.app.styles.section(w.out, "Premium Feature Levels:")
	fmt.Fprintln(w.out, "1. None")
	fmt.Fprintln(w.out, "2. Exclusive Facilities Access (+15% surcharge)")
	fmt.Fprintln(w.out, "3. Specialized Training Programs (+15% surcharge)")
	fmt.Fprintln(w.out)

	for {
		input, err := w.readLine("Select premium level (1-3) or 'none' for no premium: ")
		if err != nil {
			return "", err
		}

		switch strings.ToLower(input) {
		case "cancel":
			return "", errCanceled
		case "none", "0", "1":
			return catalog.PremiumNone, nil
		case "2":
			return catalog.PremiumExclusiveFacilities, nil
		case "3":
			return catalog.PremiumSpecializedTraining, nil
		}
		fmt.Fprintln(w.out, "Invalid selection. Please enter 1, 2, 3, or 'none'.")
		fmt.Fprintln(w.out)
	}
}

func (w *wizard) readLine(prompt string) (string, error) {
	return w.app.readLine(prompt)
}

// readLine prompts and reads one trimmed line. A closed stdin cancels
// the workflow.
func (a *App) readLine(prompt string) (string, error) {
	fmt.Fprint(a.stdout, a.styles.Prompt.Render(prompt))
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", err
		}
		return "", errCanceled
	}
	return strings.TrimSpace(a.in.Text()), nil
}

// askYesNo prompts until the user answers yes or no.
func (a *App) askYesNo(prompt string) (bool, error) {
	for {
		input, err := a.readLine(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(input) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		fmt.Fprintln(a.stdout, "Please enter 'yes' or 'no'.")
		fmt.Fprintln(a.stdout)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// pickByNumber resolves a 1-based menu number against the listed names.
func pickByNumber(names []string, input string) (string, bool) {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(names) {
		return "", false
	}
	return names[n-1], true
}

// pickByName resolves input against the listed names, ignoring case.
func pickByName(names []string, input string) (string, bool) {
	for _, name := range names {
		if strings.EqualFold(name, input) {
			return name, true
		}
	}
	return "", false
}

func indexOf(items []string, target string) int {
	for i, item := range items {
		if item == target {
			return i
		}
	}
	return -1
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}
