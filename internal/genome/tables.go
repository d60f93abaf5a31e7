package genome

import "github.com/dom/quiz-monsters/internal/domain"

type BodyType int

const (
	BodyBlob BodyType = iota
	BodyCrystal
	BodyFlame
	BodyCloud
	BodyStar
	BodyPolygon
	BodyOrganic
	BodyMythical
)

const BodyTypeCount = 8

var bodyTypeNames = [BodyTypeCount]string{
	"blob", "crystal", "flame", "cloud", "star", "polygon", "organic", "mythical",
}

func (b BodyType) String() string {
	return bodyTypeNames[b.Clamp()]
}

// Clamp maps out-of-range indices to BodyBlob.
func (b BodyType) Clamp() BodyType {
	if b < 0 || b >= BodyTypeCount {
		return BodyBlob
	}
	return b
}

type EyeStyle string

const (
	EyesDot      EyeStyle = "dot"
	EyesRound    EyeStyle = "round"
	EyesSleepy   EyeStyle = "sleepy"
	EyesSparkle  EyeStyle = "sparkle"
	EyesStar     EyeStyle = "star"
	EyesCyclops  EyeStyle = "cyclops"
	EyesGradient EyeStyle = "gradient"
	EyesCosmic   EyeStyle = "cosmic"
)

type MouthStyle string

const (
	MouthSmile  MouthStyle = "smile"
	MouthFlat   MouthStyle = "flat"
	MouthOpen   MouthStyle = "open"
	MouthFang   MouthStyle = "fang"
	MouthGrin   MouthStyle = "grin"
	MouthTongue MouthStyle = "tongue"
	MouthRoar   MouthStyle = "roar"
	MouthJewel  MouthStyle = "jewel"
)

type LimbStyle string

const (
	LimbsNone      LimbStyle = "none"
	LimbsStubby    LimbStyle = "stubby"
	LimbsArms      LimbStyle = "arms"
	LimbsWings     LimbStyle = "wings"
	LimbsTentacles LimbStyle = "tentacles"
	LimbsEthereal  LimbStyle = "ethereal"
)

type Accessory string

const (
	AccessoryHat           Accessory = "hat"
	AccessoryBow           Accessory = "bow"
	AccessoryCrown         Accessory = "crown"
	AccessoryScarf         Accessory = "scarf"
	AccessoryHalo          Accessory = "halo"
	AccessoryAura          Accessory = "aura"
	AccessoryOrbit         Accessory = "orbit"
	AccessoryConstellation Accessory = "constellation"
)

type PatternKind string

const (
	PatternNone    PatternKind = "none"
	PatternDots    PatternKind = "dots"
	PatternStripes PatternKind = "stripes"
	PatternScales  PatternKind = "scales"
	PatternGlyphs  PatternKind = "glyphs"
)

type IdleAnimation string

const (
	IdleBounce  IdleAnimation = "bounce"
	IdleFloat   IdleAnimation = "float"
	IdleBreathe IdleAnimation = "breathe"
	IdleSway    IdleAnimation = "sway"
)

type HoverAnimation string

const (
	HoverWiggle HoverAnimation = "wiggle"
	HoverSpin   HoverAnimation = "spin"
	HoverPulse  HoverAnimation = "pulse"
	HoverJump   HoverAnimation = "jump"
)

type SpecialAnimation string

const (
	SpecialSparkle   SpecialAnimation = "sparkle"
	SpecialFlicker   SpecialAnimation = "flicker"
	SpecialGlowPulse SpecialAnimation = "glow_pulse"
	SpecialOrbit     SpecialAnimation = "orbit"
)

// tiered lists the options each rarity tier introduces. A tier may use its own
// options plus every lower tier's.
type tiered[T any] [domain.RarityCount][]T

func (t tiered[T]) cumulative() [domain.RarityCount][]T {
	var out [domain.RarityCount][]T
	var acc []T
	for r := range t {
		acc = append(acc, t[r]...)
		out[r] = append([]T(nil), acc...)
	}
	return out
}

type countRange struct{ min, max int }

var (
	bodyOptions = tiered[BodyType]{
		{BodyBlob, BodyCrystal, BodyFlame, BodyCloud, BodyStar, BodyPolygon, BodyOrganic},
		nil,
		{BodyMythical},
		nil,
	}.cumulative()

	eyeOptions = tiered[EyeStyle]{
		{EyesDot, EyesRound},
		{EyesSleepy, EyesSparkle},
		{EyesStar, EyesCyclops},
		{EyesGradient, EyesCosmic},
	}.cumulative()

	mouthOptions = tiered[MouthStyle]{
		{MouthSmile, MouthFlat},
		{MouthOpen, MouthFang},
		{MouthGrin, MouthTongue},
		{MouthRoar, MouthJewel},
	}.cumulative()

	limbOptions = tiered[LimbStyle]{
		{LimbsNone, LimbsStubby},
		{LimbsArms},
		{LimbsWings, LimbsTentacles},
		{LimbsEthereal},
	}.cumulative()

	accessoryOptions = tiered[Accessory]{
		nil,
		{AccessoryHat, AccessoryBow},
		{AccessoryCrown, AccessoryScarf, AccessoryHalo},
		{AccessoryAura, AccessoryOrbit, AccessoryConstellation},
	}.cumulative()

	accessoryCounts = [domain.RarityCount]countRange{{0, 0}, {0, 1}, {1, 2}, {2, 3}}

	patternOptions = tiered[PatternKind]{
		{PatternNone, PatternDots},
		{PatternStripes},
		{PatternScales},
		{PatternGlyphs},
	}.cumulative()

	idleOptions    = []IdleAnimation{IdleBounce, IdleFloat, IdleBreathe, IdleSway}
	hoverOptions   = []HoverAnimation{HoverWiggle, HoverSpin, HoverPulse, HoverJump}
	specialOptions = []SpecialAnimation{SpecialSparkle, SpecialFlicker, SpecialGlowPulse, SpecialOrbit}
)

const (
	minPatternDensity = 0.6
	maxPatternDensity = 1.4
)

var traits = []string{
	"brave", "curious", "gentle", "playful", "wise",
	"mischievous", "shy", "cheerful", "calm", "proud",
}

// Palette is a colour scheme. Glow and Gradient are optional.
type Palette struct {
	Primary   string   `json:"primary"`
	Secondary string   `json:"secondary"`
	Accent    string   `json:"accent"`
	Glow      string   `json:"glow,omitempty"`
	Gradient  []string `json:"gradient,omitempty"`
}

// PaletteTable is indexed by content type position (domain.AllContentTypes)
// and rarity.
type PaletteTable [domain.ContentTypeCount][domain.RarityCount][]Palette

var defaultPalette = Palette{Primary: "#8ecae6", Secondary: "#219ebc", Accent: "#ffb703"}

var palettes = PaletteTable{
	// proverb: earthy greens
	{
		{{Primary: "#a7c957", Secondary: "#6a994e", Accent: "#f2e8cf"}, {Primary: "#90be6d", Secondary: "#43aa8b", Accent: "#f9c74f"}},
		{{Primary: "#52b788", Secondary: "#2d6a4f", Accent: "#d8f3dc"}, {Primary: "#99d98c", Secondary: "#168aad", Accent: "#ffd166"}},
		{{Primary: "#2a9d8f", Secondary: "#264653", Accent: "#e9c46a", Glow: "#b7e4c7"}, {Primary: "#40916c", Secondary: "#1b4332", Accent: "#ffbe0b", Glow: "#95d5b2"}},
		{{Primary: "#06d6a0", Secondary: "#118ab2", Accent: "#ffd60a", Glow: "#caffbf"}, {Primary: "#38b000", Secondary: "#004b23", Accent: "#f5cb5c", Glow: "#ccff33"}},
	},
	// idiom: cool blues and violets
	{
		{{Primary: "#90e0ef", Secondary: "#0077b6", Accent: "#caf0f8"}, {Primary: "#a2d2ff", Secondary: "#5e60ce", Accent: "#ffafcc"}},
		{{Primary: "#4ea8de", Secondary: "#3a0ca3", Accent: "#f72585"}, {Primary: "#7b9acc", Secondary: "#1d3557", Accent: "#e63946"}},
		{{Primary: "#7209b7", Secondary: "#3f37c9", Accent: "#4cc9f0", Glow: "#b5179e"}, {Primary: "#6930c3", Secondary: "#5390d9", Accent: "#80ffdb", Glow: "#72efdd"}},
		{{Primary: "#560bad", Secondary: "#240046", Accent: "#f15bb5", Glow: "#9b5de5"}, {Primary: "#3c096c", Secondary: "#10002b", Accent: "#00f5d4", Glow: "#00bbf9"}},
	},
	// four_character_idiom: reds and golds
	{
		{{Primary: "#f4a261", Secondary: "#e76f51", Accent: "#fefae0"}, {Primary: "#ffb4a2", Secondary: "#e5989b", Accent: "#ffcdb2"}},
		{{Primary: "#e85d04", Secondary: "#9d0208", Accent: "#ffba08"}, {Primary: "#f48c06", Secondary: "#d00000", Accent: "#faa307"}},
		{{Primary: "#d62828", Secondary: "#6a040f", Accent: "#fcbf49", Glow: "#f77f00"}, {Primary: "#c9184a", Secondary: "#590d22", Accent: "#ffccd5", Glow: "#ff4d6d"}},
		{{Primary: "#ffd60a", Secondary: "#9d0208", Accent: "#ff5400", Glow: "#ffea00"}, {Primary: "#ff0054", Secondary: "#370617", Accent: "#ffbd00", Glow: "#ff9e00"}},
	},
}

// paletteChoices resolves the palette candidates for a content type and tier.
// An empty slot falls back to the type's common tier, then to the default
// palette. Unknown content types use the default palette.
func paletteChoices(table *PaletteTable, contentType domain.ContentType, rarity domain.Rarity) []Palette {
	idx := contentType.Index()
	if idx < 0 || idx >= len(table) {
		return []Palette{defaultPalette}
	}
	if !rarity.Valid() {
		rarity = domain.RarityCommon
	}
	if choices := table[idx][rarity]; len(choices) > 0 {
		return choices
	}
	if choices := table[idx][domain.RarityCommon]; len(choices) > 0 {
		return choices
	}
	return []Palette{defaultPalette}
}
