// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Circular Labs

package prompts

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// RunGenerateForm prompts for the values the generate command is missing:
// the target languages and, when askOutput is set, the output directory.
// Already-selected values are left untouched.
func RunGenerateForm(selected *[]string, output *string, askOutput bool, available []string) error {
	var fields []huh.Field

	if len(*selected) == 0 {
		options := make([]huh.Option[string], len(available))
		for i, id := range available {
			options[i] = huh.NewOption(id, id).Selected(true)
		}
		fields = append(fields, huh.NewMultiSelect[string]().
			Title("Target languages").
			Options(options...).
			Validate(func(chosen []string) error {
				if len(chosen) == 0 {
					return errors.New("select at least one language")
				}
				return nil
			}).
			Value(selected))
	}

	if askOutput {
		fields = append(fields, huh.NewInput().
			Title("Output directory").
			Value(output))
	}

	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run()
}
