// Package wizard implements the four-step profile onboarding flow.
//
// The Wizard type holds the step counter and the profile draft, and decides
// when the Continue action is allowed. It is pure state with no rendering;
// the step TUI in internal/ui/tui and the huh form in form.go are two front
// ends over the same controller, so both emit the completed profile through
// the same one-shot callback.
package wizard
