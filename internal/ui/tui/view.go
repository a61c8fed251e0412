package tui

import (
	"fmt"
	"strings"

	"github.com/kindling-app/kindling/internal/profile"
	"github.com/kindling-app/kindling/internal/profile/wizard"
)

const interestColumns = 3

func renderView(m Model) string {
	var b strings.Builder

	renderHeader(&b, m)
	renderProgressBar(&b, m)

	switch m.wiz.Step() {
	case wizard.StepName:
		renderNameStep(&b, m)
	case wizard.StepPhotos:
		renderPhotosStep(&b, m)
	case wizard.StepBio:
		renderBioStep(&b, m)
	case wizard.StepInterests:
		renderInterestsStep(&b, m)
	}

	renderContinue(&b, m)
	renderFooter(&b, m)

	return b.String()
}

func renderHeader(b *strings.Builder, m Model) {
	step := m.wiz.Step()
	b.WriteString(titleStyle.Render("kindling"))
	b.WriteString("  ")
	b.WriteString(stepStyle.Render(fmt.Sprintf("Step %d of %d: %s", int(step), wizard.StepCount, step.Title())))
	b.WriteString("\n")
}

func renderProgressBar(b *strings.Builder, m Model) {
	progress := m.wiz.Progress()
	barWidth := 40
	if m.Width > 0 && m.Width < 80 {
		barWidth = m.Width - 20
		if barWidth < 10 {
			barWidth = 10
		}
	}
	filled := int(float64(barWidth) * progress)
	if filled > barWidth {
		filled = barWidth
	}

	bar := progressBarFull.Render(strings.Repeat("█", filled)) +
		progressBarEmpty.Render(strings.Repeat("░", barWidth-filled))

	fmt.Fprintf(b, "  %s %d%%\n", bar, int(progress*100))
}

func renderNameStep(b *strings.Builder, m Model) {
	b.WriteString(sectionStyle.Render("  What's your name?"))
	b.WriteString("\n")
	fmt.Fprintf(b, "    %s\n", m.nameInput.View())

	n := len(strings.TrimSpace(m.nameInput.Value()))
	hint := fmt.Sprintf("%d-%d characters", profile.MinNameLen, profile.MaxNameLen)
	fmt.Fprintf(b, "    %s\n", dimStyle.Render(fmt.Sprintf("%d/%d  (%s)", n, profile.MaxNameLen, hint)))
}

func renderPhotosStep(b *strings.Builder, m Model) {
	photos := m.wiz.Draft().Photos

	b.WriteString(sectionStyle.Render(fmt.Sprintf("  Add your photos (%d/%d)", len(photos), profile.MaxPhotos)))
	b.WriteString("\n")

	if len(photos) == 0 {
		fmt.Fprintf(b, "    %s\n", dimStyle.Render("No photos yet. Press 'a' to add one."))
	}
	for i, p := range photos {
		cursor := " "
		style := dimStyle
		if i == m.photoCursor && !m.addingPhoto {
			cursor = cursorBar
			style = activeStyle
		}
		badge := ""
		if i == 0 {
			badge = " " + selectedStyle.Render(mainBadge)
		}
		name := p.SourcePath
		if name == "" {
			name = p.URL
		}
		fmt.Fprintf(b, "   %s %s %s%s\n", cursor, style.Render(checkMark), style.Render(name), badge)
	}

	if m.addingPhoto {
		b.WriteString("\n")
		fmt.Fprintf(b, "    %s %s\n", stepStyle.Render("Photo path:"), m.photoInput.View())
		if m.uploading {
			fmt.Fprintf(b, "    %s\n", dimStyle.Render("uploading..."))
		}
	}
	if m.uploadErr != nil {
		fmt.Fprintf(b, "    %s\n", errorStyle.Render(fmt.Sprintf("%s upload failed: %v", crossMark, m.uploadErr)))
	}

	if len(photos) < profile.MinPhotos {
		fmt.Fprintf(b, "    %s\n", dimStyle.Render(fmt.Sprintf("Add at least %d photos to continue. The first is your main photo.", profile.MinPhotos)))
	}
}

func renderBioStep(b *strings.Builder, m Model) {
	b.WriteString(sectionStyle.Render("  Tell us about yourself"))
	b.WriteString("\n")
	b.WriteString(m.bioInput.View())
	b.WriteString("\n")

	n := len(strings.TrimSpace(m.bioInput.Value()))
	fmt.Fprintf(b, "    %s\n", dimStyle.Render(fmt.Sprintf("%d/%d  (at least %d characters)", n, profile.MaxBioLen, profile.MinBioLen)))
}

func renderInterestsStep(b *strings.Builder, m Model) {
	draft := m.wiz.Draft()

	b.WriteString(sectionStyle.Render(fmt.Sprintf("  Pick your interests (%d/%d, minimum %d)",
		len(draft.Interests), profile.MaxInterests, profile.MinInterests)))
	b.WriteString("\n")

	for row := 0; row*interestColumns < len(profile.Interests); row++ {
		b.WriteString("   ")
		for col := 0; col < interestColumns; col++ {
			i := row*interestColumns + col
			if i >= len(profile.Interests) {
				break
			}
			it := profile.Interests[i]

			mark := "[ ]"
			style := dimStyle
			if profile.HasInterest(draft.Interests, it.Tag) {
				mark = "[x]"
				style = selectedStyle
			}
			if i == m.interestCursor {
				style = activeStyle
			}

			cursor := " "
			if i == m.interestCursor {
				cursor = cursorBar
			}
			fmt.Fprintf(b, "%s %s %-16s", cursor, style.Render(mark), style.Render(it.Label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(b, "    %s %s %s\n",
		stepStyle.Render("Match me with:"),
		selectedStyle.Render(preferenceLabel(draft.Preference)),
		dimStyle.Render("(p to change)"))
}

func renderContinue(b *strings.Builder, m Model) {
	b.WriteString("\n")
	label := "Continue"
	if m.wiz.Step() == wizard.StepInterests {
		label = "Finish"
	}
	if m.wiz.CanAdvance() {
		fmt.Fprintf(b, "    %s\n", continueStyle.Render("[ "+label+" ]"))
	} else {
		fmt.Fprintf(b, "    %s\n", continueDimStyle.Render("[ "+label+" ]"))
	}
}

func renderFooter(b *strings.Builder, m Model) {
	var hints []string
	switch m.wiz.Step() {
	case wizard.StepName:
		hints = []string{"enter: continue"}
	case wizard.StepPhotos:
		if m.addingPhoto {
			hints = []string{"enter: upload", "esc: cancel"}
		} else {
			hints = []string{"a: add", "d: remove", "↑/↓: select", "enter: continue", "esc: back"}
		}
	case wizard.StepBio:
		hints = []string{"ctrl+s: continue", "esc: back"}
	case wizard.StepInterests:
		hints = []string{"space: toggle", "arrows: move", "p: preference", "enter: finish", "esc: back"}
	}
	hints = append(hints, "ctrl+c: quit")

	b.WriteString(footerStyle.Render("  " + strings.Join(hints, "  |  ")))
	b.WriteString("\n")
}

func preferenceLabel(p profile.MatchPreference) string {
	switch p {
	case profile.PreferenceMen:
		return "Men"
	case profile.PreferenceWomen:
		return "Women"
	default:
		return "Anyone"
	}
}
