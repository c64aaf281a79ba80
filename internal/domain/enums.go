package domain

type Modality string

const (
	ModalityOnSite  Modality = "on_site"
	ModalityBlended Modality = "blended"
	ModalityOnline  Modality = "online"
)

// ValidModalities is the canonical set of accepted delivery modality strings.
var ValidModalities = map[string]bool{
	"on_site": true, "blended": true, "online": true,
}

type ProctorStatus string

const (
	ProctorNo        ProctorStatus = "no"
	ProctorYes       ProctorStatus = "yes"
	ProctorUndecided ProctorStatus = "undecided"
)

type AwardType string

const (
	AwardMajor   AwardType = "major"
	AwardMinor   AwardType = "minor"
	AwardSpecial AwardType = "special_purpose"
	AwardSupp    AwardType = "supplemental"
)

// NFQ level bounds supported by the bundled award standards.
const (
	MinNFQLevel = 6
	MaxNFQLevel = 9
)

type ReadingKind string

const (
	ReadingCore      ReadingKind = "core"
	ReadingSecondary ReadingKind = "secondary"
	ReadingJournal   ReadingKind = "journal"
	ReadingOnline    ReadingKind = "online"
)

type EditorMode string

const (
	ModeOwner        EditorMode = "owner"
	ModeModuleEditor EditorMode = "module_editor"
)
