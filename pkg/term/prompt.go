package term

import (
	"fmt"

	"github.com/manifoldco/promptui"
)

// PromptConfirm asks the user to confirm `action` and reports whether it was accepted.
func PromptConfirm(action string) bool {
	prompt := promptui.Prompt{
		Label:     action,
		IsConfirm: true,
		Templates: &promptui.PromptTemplates{
			Confirm: "❓ {{ . }} [y/N]: ",
		},
		HideEntered: true,
	}

	for {
		answer, err := prompt.Run()

		// Handle os.Interrupt and plain <Enter>:
		if err != nil && len(answer) == 0 {
			return false
		}

		switch answer {
		case "y", "Y", "yes":
			return true
		case "n", "N", "no":
			return false
		default:
			prompt.Label = fmt.Sprintf("%s Type 'y' (yes) or 'n' (no)", action)
			prompt.Templates.Confirm = "❓ {{ . }}: "
		}
	}
}
