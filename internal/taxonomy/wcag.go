package taxonomy

import "strings"

// Guideline is the canonical metadata of one guideline tag.
type Guideline struct {
	ID    string
	Title string
	Name  string
	URL   string
}

// Lookup maps axe guideline tags to guideline metadata. It is read-only.
type Lookup map[string]Guideline

const understandingBase = "https://www.w3.org/WAI/WCAG21/Understanding/"

var criteria = []struct {
	number string
	name   string
	slug   string
}{
	{"1.1.1", "Non-text Content", "non-text-content"},
	{"1.2.1", "Audio-only and Video-only (Prerecorded)", "audio-only-and-video-only-prerecorded"},
	{"1.2.2", "Captions (Prerecorded)", "captions-prerecorded"},
	{"1.2.3", "Audio Description or Media Alternative (Prerecorded)", "audio-description-or-media-alternative-prerecorded"},
	{"1.2.4", "Captions (Live)", "captions-live"},
	{"1.2.5", "Audio Description (Prerecorded)", "audio-description-prerecorded"},
	{"1.3.1", "Info and Relationships", "info-and-relationships"},
	{"1.3.2", "Meaningful Sequence", "meaningful-sequence"},
	{"1.3.3", "Sensory Characteristics", "sensory-characteristics"},
	{"1.3.4", "Orientation", "orientation"},
	{"1.3.5", "Identify Input Purpose", "identify-input-purpose"},
	{"1.4.1", "Use of Color", "use-of-color"},
	{"1.4.2", "Audio Control", "audio-control"},
	{"1.4.3", "Contrast (Minimum)", "contrast-minimum"},
	{"1.4.4", "Resize text", "resize-text"},
	{"1.4.5", "Images of Text", "images-of-text"},
	{"1.4.10", "Reflow", "reflow"},
	{"1.4.11", "Non-text Contrast", "non-text-contrast"},
	{"1.4.12", "Text Spacing", "text-spacing"},
	{"1.4.13", "Content on Hover or Focus", "content-on-hover-or-focus"},
	{"2.1.1", "Keyboard", "keyboard"},
	{"2.1.2", "No Keyboard Trap", "no-keyboard-trap"},
	{"2.1.4", "Character Key Shortcuts", "character-key-shortcuts"},
	{"2.2.1", "Timing Adjustable", "timing-adjustable"},
	{"2.2.2", "Pause, Stop, Hide", "pause-stop-hide"},
	{"2.3.1", "Three Flashes or Below Threshold", "three-flashes-or-below-threshold"},
	{"2.4.1", "Bypass Blocks", "bypass-blocks"},
	{"2.4.2", "Page Titled", "page-titled"},
	{"2.4.3", "Focus Order", "focus-order"},
	{"2.4.4", "Link Purpose (In Context)", "link-purpose-in-context"},
	{"2.4.5", "Multiple Ways", "multiple-ways"},
	{"2.4.6", "Headings and Labels", "headings-and-labels"},
	{"2.4.7", "Focus Visible", "focus-visible"},
	{"2.5.1", "Pointer Gestures", "pointer-gestures"},
	{"2.5.2", "Pointer Cancellation", "pointer-cancellation"},
	{"2.5.3", "Label in Name", "label-in-name"},
	{"2.5.4", "Motion Actuation", "motion-actuation"},
	{"3.1.1", "Language of Page", "language-of-page"},
	{"3.1.2", "Language of Parts", "language-of-parts"},
	{"3.2.1", "On Focus", "on-focus"},
	{"3.2.2", "On Input", "on-input"},
	{"3.2.3", "Consistent Navigation", "consistent-navigation"},
	{"3.2.4", "Consistent Identification", "consistent-identification"},
	{"3.3.1", "Error Identification", "error-identification"},
	{"3.3.2", "Labels or Instructions", "labels-or-instructions"},
	{"3.3.3", "Error Suggestion", "error-suggestion"},
	{"3.3.4", "Error Prevention (Legal, Financial, Data)", "error-prevention-legal-financial-data"},
	{"4.1.1", "Parsing", "parsing"},
	{"4.1.2", "Name, Role, Value", "name-role-value"},
	{"4.1.3", "Status Messages", "status-messages"},
}

var levels = []struct {
	tag   string
	id    string
	title string
	url   string
}{
	{"wcag2a", "WCAG2A", "WCAG 2.0 Level A", "https://www.w3.org/WAI/WCAG2A-Conformance"},
	{"wcag2aa", "WCAG2AA", "WCAG 2.0 Level AA", "https://www.w3.org/WAI/WCAG2AA-Conformance"},
	{"wcag21a", "WCAG21A", "WCAG 2.1 Level A", "https://www.w3.org/WAI/WCAG21/quickref/?levels=a"},
	{"wcag21aa", "WCAG21AA", "WCAG 2.1 Level AA", "https://www.w3.org/WAI/WCAG21/quickref/?levels=aa"},
}

// WCAG is the built-in lookup for WCAG 2.0/2.1 conformance levels and
// level A/AA success criteria, keyed by axe tag (e.g. "wcag143").
var WCAG = buildWCAG()

func buildWCAG() Lookup {
	out := make(Lookup, len(criteria)+len(levels))
	for _, c := range criteria {
		tag := "wcag" + strings.ReplaceAll(c.number, ".", "")
		out[tag] = Guideline{
			ID:    "WCAG" + c.number,
			Title: "WCAG " + c.number,
			Name:  c.name,
			URL:   understandingBase + c.slug,
		}
	}
	for _, l := range levels {
		out[l.tag] = Guideline{ID: l.id, Title: l.title, Name: l.title, URL: l.url}
	}
	return out
}
