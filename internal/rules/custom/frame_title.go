package custom

import "axesarif/internal/rules"

// FrameTitleRule collects the title of every frame and iframe. axe reports it
// as "get-frame-title" once the custom rule configuration is enabled.
type FrameTitleRule struct{}

func (r *FrameTitleRule) ID() string {
	return "get-frame-title"
}

func (r *FrameTitleRule) Title() string {
	return "Frames must have a title"
}

func (r *FrameTitleRule) Description() string {
	return "Collects the type and title of <frame> and <iframe> elements. A frame passes when its trimmed title attribute is non-empty."
}

func (r *FrameTitleRule) HelpURL() string {
	return "https://www.w3.org/WAI/WCAG21/Understanding/name-role-value"
}

func (r *FrameTitleRule) Tags() []string {
	return []string{"wcag2a", "wcag412"}
}

func init() {
	rules.Register(&FrameTitleRule{})
}
