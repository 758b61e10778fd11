package converter

import (
	"axesarif/internal/axe"
	"axesarif/internal/sarif"
)

// ConverterName identifies this tool in run.conversion.
const ConverterName = "axe-sarif"

// Collaborators are the pure functions a Converter delegates run metadata to.
// ConversionProperties may be nil; every other field is required.
type Collaborators struct {
	ConversionProperties func() *sarif.Conversion
	ToolProperties       func() sarif.ToolComponent
	Invocations          func(env axe.Environment) []sarif.Invocation
	ArtifactProperties   func(env axe.Environment) sarif.Artifact
	EnvironmentData      func(results *axe.Results) axe.Environment
}

// DefaultCollaborators wires the built-in providers. version is the
// converter's own version.
func DefaultCollaborators(version string) Collaborators {
	return Collaborators{
		ConversionProperties: ConversionProperties(version),
		ToolProperties:       ToolProperties,
		Invocations:          Invocations,
		ArtifactProperties:   ArtifactProperties,
		EnvironmentData:      axe.EnvironmentData,
	}
}

func ConversionProperties(version string) func() *sarif.Conversion {
	return func() *sarif.Conversion {
		driver := sarif.ToolComponent{Name: ConverterName, FullName: ConverterName}
		if version != "" {
			driver.FullName = ConverterName + " " + version
			driver.Version = version
		}
		return &sarif.Conversion{Tool: sarif.Tool{Driver: driver}}
	}
}

// ToolProperties describes axe-core. The version is left empty for the
// converter to take from the scan's environment.
func ToolProperties() sarif.ToolComponent {
	return sarif.ToolComponent{
		Name:     "axe-core",
		FullName: "axe for Web",
		ShortDescription: &sarif.MultiformatMessageString{
			Text: "An open source accessibility rules library for automated testing.",
		},
		InformationURI: "https://www.deque.com/axe/",
		Properties:     sarif.PropertyBag{"qualityDomain": "Accessibility"},
	}
}

func Invocations(env axe.Environment) []sarif.Invocation {
	inv := sarif.Invocation{
		StartTimeUTC:        env.Timestamp,
		EndTimeUTC:          env.Timestamp,
		ExecutionSuccessful: true,
	}
	if env.BrowserSpec != "" {
		inv.Properties = sarif.PropertyBag{"browserSpec": env.BrowserSpec}
	}
	return []sarif.Invocation{inv}
}

func ArtifactProperties(env axe.Environment) sarif.Artifact {
	a := sarif.Artifact{
		SourceLanguage: "html",
		Roles:          []string{"analysisTarget"},
	}
	if env.TargetPageURL != "" {
		a.Location = &sarif.ArtifactLocation{URI: env.TargetPageURL}
	}
	if env.TargetPageTitle != "" {
		a.Description = &sarif.Message{Text: env.TargetPageTitle}
	}
	return a
}

// ArtifactLocation references the scanned page, artifacts[0] of the run.
func ArtifactLocation(env axe.Environment) *sarif.ArtifactLocation {
	index := 0
	return &sarif.ArtifactLocation{URI: env.TargetPageURL, Index: &index}
}
