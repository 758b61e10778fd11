// Package sarif models the subset of the SARIF 2.1.0 log format that the
// converter emits, along with helpers to encode, digest and validate logs.
package sarif

const (
	Version   = "2.1.0"
	SchemaURI = "https://json.schemastore.org/sarif-2.1.0.json"
)

// Result kinds.
const (
	KindFail          = "fail"
	KindPass          = "pass"
	KindOpen          = "open"
	KindNotApplicable = "notApplicable"
)

// Result levels. Any kind other than fail must carry LevelNone.
const (
	LevelError = "error"
	LevelNone  = "none"
)

// PropertyBag holds free-form properties. Keys marshal in sorted order.
type PropertyBag map[string]any

type Log struct {
	Schema  string `json:"$schema,omitempty"`
	Version string `json:"version"`
	Runs    []Run  `json:"runs"`
}

type Run struct {
	Conversion  *Conversion     `json:"conversion,omitempty"`
	Tool        Tool            `json:"tool"`
	Invocations []Invocation    `json:"invocations,omitempty"`
	Artifacts   []Artifact      `json:"artifacts,omitempty"`
	Results     []Result        `json:"results"`
	Taxonomies  []ToolComponent `json:"taxonomies,omitempty"`
	Properties  PropertyBag     `json:"properties,omitempty"`
}

type Tool struct {
	Driver ToolComponent `json:"driver"`
}

// Conversion describes how a converter produced this run from a tool's native output.
type Conversion struct {
	Tool       Tool        `json:"tool"`
	Invocation *Invocation `json:"invocation,omitempty"`
}

// ToolComponent is used both for the analysis driver and for taxonomies.
type ToolComponent struct {
	Name                string                    `json:"name"`
	FullName            string                    `json:"fullName,omitempty"`
	ShortDescription    *MultiformatMessageString `json:"shortDescription,omitempty"`
	Organization        string                    `json:"organization,omitempty"`
	Version             string                    `json:"version,omitempty"`
	SemanticVersion     string                    `json:"semanticVersion,omitempty"`
	InformationURI      string                    `json:"informationUri,omitempty"`
	DownloadURI         string                    `json:"downloadUri,omitempty"`
	IsComprehensive     bool                      `json:"isComprehensive,omitempty"`
	Properties          PropertyBag               `json:"properties,omitempty"`
	SupportedTaxonomies []ToolComponentReference  `json:"supportedTaxonomies,omitempty"`
	Rules               []ReportingDescriptor     `json:"rules,omitempty"`
	Taxa                []ReportingDescriptor     `json:"taxa,omitempty"`
}

type ToolComponentReference struct {
	Name  string `json:"name,omitempty"`
	Index int    `json:"index"`
}

// ReportingDescriptor describes a rule (in a driver) or a taxon (in a taxonomy).
type ReportingDescriptor struct {
	ID               string                            `json:"id"`
	Name             string                            `json:"name,omitempty"`
	ShortDescription *MultiformatMessageString         `json:"shortDescription,omitempty"`
	FullDescription  *MultiformatMessageString         `json:"fullDescription,omitempty"`
	HelpURI          string                            `json:"helpUri,omitempty"`
	Properties       PropertyBag                       `json:"properties,omitempty"`
	Relationships    []ReportingDescriptorRelationship `json:"relationships,omitempty"`
}

type ReportingDescriptorRelationship struct {
	Target ReportingDescriptorReference `json:"target"`
	Kinds  []string                     `json:"kinds,omitempty"`
}

type ReportingDescriptorReference struct {
	ID            string                  `json:"id,omitempty"`
	Index         int                     `json:"index"`
	ToolComponent *ToolComponentReference `json:"toolComponent,omitempty"`
}

type Result struct {
	RuleID              string            `json:"ruleId"`
	RuleIndex           int               `json:"ruleIndex"`
	Kind                string            `json:"kind,omitempty"`
	Level               string            `json:"level,omitempty"`
	Message             Message           `json:"message"`
	Locations           []Location        `json:"locations,omitempty"`
	PartialFingerprints map[string]string `json:"partialFingerprints,omitempty"`
	Properties          PropertyBag       `json:"properties,omitempty"`
}

type Message struct {
	Text     string `json:"text"`
	Markdown string `json:"markdown,omitempty"`
}

type MultiformatMessageString struct {
	Text     string `json:"text"`
	Markdown string `json:"markdown,omitempty"`
}

type Location struct {
	PhysicalLocation *PhysicalLocation `json:"physicalLocation,omitempty"`
	LogicalLocations []LogicalLocation `json:"logicalLocations,omitempty"`
}

type PhysicalLocation struct {
	ArtifactLocation *ArtifactLocation `json:"artifactLocation,omitempty"`
	Region           *Region           `json:"region,omitempty"`
}

type ArtifactLocation struct {
	URI   string `json:"uri,omitempty"`
	Index *int   `json:"index,omitempty"`
}

type Region struct {
	Snippet *ArtifactContent `json:"snippet,omitempty"`
}

type ArtifactContent struct {
	Text string `json:"text"`
}

type LogicalLocation struct {
	Name               string `json:"name,omitempty"`
	FullyQualifiedName string `json:"fullyQualifiedName,omitempty"`
	Kind               string `json:"kind,omitempty"`
}

type Invocation struct {
	StartTimeUTC        string      `json:"startTimeUtc,omitempty"`
	EndTimeUTC          string      `json:"endTimeUtc,omitempty"`
	ExecutionSuccessful bool        `json:"executionSuccessful"`
	Properties          PropertyBag `json:"properties,omitempty"`
}

type Artifact struct {
	Location       *ArtifactLocation `json:"location,omitempty"`
	SourceLanguage string            `json:"sourceLanguage,omitempty"`
	Roles          []string          `json:"roles,omitempty"`
	Description    *Message          `json:"description,omitempty"`
	Properties     PropertyBag       `json:"properties,omitempty"`
}
