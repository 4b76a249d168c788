// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Sexe is the respondent's declared gender.
type Sexe string

const (
	SexeHomme Sexe = "HOMME"
	SexeFemme Sexe = "FEMME"
	SexeAutre Sexe = "AUTRE"
)

var SexeValues = []Sexe{SexeHomme, SexeFemme, SexeAutre}

func (s Sexe) Valid() bool {
	switch s {
	case SexeHomme, SexeFemme, SexeAutre:
		return true
	}
	return false
}

// Usage answers q1: how often the respondent uses dating apps.
type Usage string

const (
	UsageRegulierement Usage = "REGULIEREMENT"
	UsageParfois       Usage = "PARFOIS"
	UsageRarement      Usage = "RAREMENT"
	UsageJamais        Usage = "JAMAIS"
)

var UsageValues = []Usage{UsageRegulierement, UsageParfois, UsageRarement, UsageJamais}

func (u Usage) Valid() bool {
	switch u {
	case UsageRegulierement, UsageParfois, UsageRarement, UsageJamais:
		return true
	}
	return false
}

// Interest answers q2: would the respondent use a Hmong dating app.
type Interest string

const (
	InterestOui      Interest = "OUI"
	InterestNon      Interest = "NON"
	InterestPeutEtre Interest = "PEUT_ETRE"
)

var InterestValues = []Interest{InterestOui, InterestNon, InterestPeutEtre}

func (i Interest) Valid() bool {
	switch i {
	case InterestOui, InterestNon, InterestPeutEtre:
		return true
	}
	return false
}

// Culture answers q4: how important Hmong culture is in a partner.
type Culture string

const (
	CultureTresImportante  Culture = "TRES_IMPORTANTE"
	CultureAssezImportante Culture = "ASSEZ_IMPORTANTE"
	CulturePeu             Culture = "PEU"
	CulturePasDuTout       Culture = "PAS_DU_TOUT"
)

var CultureValues = []Culture{CultureTresImportante, CultureAssezImportante, CulturePeu, CulturePasDuTout}

func (c Culture) Valid() bool {
	switch c {
	case CultureTresImportante, CultureAssezImportante, CulturePeu, CulturePasDuTout:
		return true
	}
	return false
}

// Style answers q9: preferred visual style of the app.
type Style string

const (
	StyleModerneFun          Style = "MODERNE_FUN"
	StyleTraditionnelElegant Style = "TRADITIONNEL_ELEGANT"
	StyleLesDeux             Style = "LES_DEUX"
)

var StyleValues = []Style{StyleModerneFun, StyleTraditionnelElegant, StyleLesDeux}

func (s Style) Valid() bool {
	switch s {
	case StyleModerneFun, StyleTraditionnelElegant, StyleLesDeux:
		return true
	}
	return false
}

// Hook answers q10: which tagline appeals most.
type Hook string

const (
	HookSerieuse   Hook = "SERIEUSE"
	HookFun        Hook = "FUN"
	HookCulturelle Hook = "CULTURELLE"
	HookRomantique Hook = "ROMANTIQUE"
)

var HookValues = []Hook{HookSerieuse, HookFun, HookCulturelle, HookRomantique}

func (h Hook) Valid() bool {
	switch h {
	case HookSerieuse, HookFun, HookCulturelle, HookRomantique:
		return true
	}
	return false
}

// Checkbox option keys offered by the questionnaire. Stored tags may also
// contain a free-form "autre:<text>" entry, so these are not enforced.
var (
	CultureFeatureOptions = []string{"clan", "langue", "activites", "traditions"}
	FeatureOptions        = []string{"chat", "appel", "verification", "match", "photos"}
)

// OtherTagPrefix marks a free-form q5 tag.
const OtherTagPrefix = "autre:"
