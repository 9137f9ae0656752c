package cli

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted is returned when the user interrupts an interactive prompt.
var ErrAborted = errors.New("cli: aborted")

// PromptDriver abstracts the terminal prompts so the wizard loop can be
// tested with a scripted driver instead of a real TTY.
type PromptDriver interface {
	Input(message, help, placeholder string) (string, error)
	Select(message string, options []string) (string, error)
	Confirm(message string) (bool, error)
	Info(message string)
}

type surveyDriver struct{}

func (surveyDriver) Input(message, help, placeholder string) (string, error) {
	var out string
	prompt := &survey.Input{
		Message: message,
		Help:    help,
		Default: "",
	}
	if placeholder != "" && help == "" {
		prompt.Help = "e.g. " + placeholder
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyDriver) Select(message string, options []string) (string, error) {
	var out string
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyDriver) Confirm(message string) (bool, error) {
	var out bool
	prompt := &survey.Confirm{Message: message, Default: true}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (surveyDriver) Info(message string) {
	fmt.Println(message)
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
