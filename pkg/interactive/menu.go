// Package interactive provides terminal user interface components
package interactive

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// MenuOption represents a menu item with its associated action
type MenuOption struct {
	Name        string
	Description string
	Action      func() error
}

const exitChoice = "Exit"

var (
	// ErrExit is returned when the user chooses to exit
	ErrExit = errors.New("exit")
	// ErrInvalidSelection is returned when an invalid menu option is selected
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrNoChoices is returned when a list prompt has nothing to offer
	ErrNoChoices = errors.New("nothing to select")
)

// MenuChoices returns the prompt labels for options, followed by Exit.
func MenuChoices(options []MenuOption) []string {
	choices := make([]string, 0, len(options)+1)
	for _, opt := range options {
		choices = append(choices, fmt.Sprintf("%s - %s", opt.Name, opt.Description))
	}

	return append(choices, exitChoice)
}

// Dispatch runs the action of the option labelled selected.
func Dispatch(options []MenuOption, selected string) error {
	if selected == exitChoice {
		return ErrExit
	}

	for _, opt := range options {
		if fmt.Sprintf("%s - %s", opt.Name, opt.Description) == selected {
			return opt.Action()
		}
	}

	return ErrInvalidSelection
}

// ShowMainMenu displays the main menu and handles user selection
func ShowMainMenu(options []MenuOption) error {
	var selected string
	prompt := &survey.Select{
		Message: "What would you like to do?",
		Options: MenuChoices(options),
	}

	if err := survey.AskOne(prompt, &selected); err != nil {
		return ErrExit
	}

	return Dispatch(options, selected)
}

// SelectFromList asks the user to pick one of choices.
func SelectFromList(message string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}

	var selected string
	prompt := &survey.Select{
		Message:  message,
		Options:  choices,
		PageSize: 15,
	}

	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", fmt.Errorf("selection canceled: %w", err)
	}

	return selected, nil
}

// SelectMany asks the user to pick any of choices, starting from defaults.
func SelectMany(message string, choices, defaults []string) ([]string, error) {
	if len(choices) == 0 {
		return nil, ErrNoChoices
	}

	var selected []string
	prompt := &survey.MultiSelect{
		Message: message,
		Options: choices,
		Default: defaults,
	}

	if err := survey.AskOne(prompt, &selected, survey.WithValidator(survey.Required)); err != nil {
		return nil, fmt.Errorf("selection canceled: %w", err)
	}

	return selected, nil
}

// PauseForEnter waits for the user to press Enter
func PauseForEnter() {
	fmt.Println("\nPress Enter to continue...")
	_, _ = fmt.Scanln()
}

// Confirm asks for user confirmation
func Confirm(message string) bool {
	confirmed := false
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	_ = survey.AskOne(prompt, &confirmed)
	return confirmed
}
