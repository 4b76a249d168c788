// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Submission status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Locales the questionnaire is authored in. Stored verbatim, never enforced.
const (
	LangFrench = "fr"
	LangHmong  = "hm"
)

// Request types

// SubmitRequest is the questionnaire payload. Optional free-text fields are
// pointers so that an absent value and an empty one both normalize the same way.
type SubmitRequest struct {
	Sexe              Sexe     `json:"sexe" validate:"required,enum"`
	Age               int      `json:"age" validate:"age"`
	Ville             *string  `json:"ville"`
	Q1Usage           Usage    `json:"q1_usage" validate:"required,enum"`
	Q2Interet         Interest `json:"q2_interet" validate:"required,enum"`
	Q3Pourquoi        *string  `json:"q3_pourquoi"`
	Q4Culture         Culture  `json:"q4_culture" validate:"required,enum"`
	Q5CultureFeatures []string `json:"q5_culture_features"`
	Q6Features        []string `json:"q6_features"`
	Q7Fuir            *string  `json:"q7_fuir"`
	Q8Rester          *string  `json:"q8_rester"`
	Q9Style           Style    `json:"q9_style" validate:"required,enum"`
	Q10Accroche       Hook     `json:"q10_accroche" validate:"required,enum"`
	Langue            string   `json:"langue"`
	HadLocal          bool     `json:"hadLocal"`
}

// Response types

type CheckIPResponse struct {
	AlreadyAnswered bool `json:"alreadyAnswered"`
}

type SubmitResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Domain types

// Response is one stored questionnaire submission.
type Response struct {
	ID                string    `json:"id"`
	IPHash            string    `json:"-"` // Never expose in JSON
	Sexe              Sexe      `json:"sexe"`
	Age               int       `json:"age"`
	Ville             string    `json:"ville"`
	Q1Usage           Usage     `json:"q1_usage"`
	Q2Interet         Interest  `json:"q2_interet"`
	Q3Pourquoi        *string   `json:"q3_pourquoi"`
	Q4Culture         Culture   `json:"q4_culture"`
	Q5CultureFeatures []string  `json:"q5_culture_features"`
	Q6Features        []string  `json:"q6_features"`
	Q7Fuir            *string   `json:"q7_fuir"`
	Q8Rester          *string   `json:"q8_rester"`
	Q9Style           Style     `json:"q9_style"`
	Q10Accroche       Hook      `json:"q10_accroche"`
	Langue            string    `json:"langue"`
	CreatedAt         time.Time `json:"createdAt"`
}

// NewResponse builds the record to persist from an accepted request.
// ID and CreatedAt are left for the store to assign.
//
// ville falls back to "" while the other free-text answers fall back to nil;
// both conventions are relied upon by existing data.
func NewResponse(req SubmitRequest, ipHash string) Response {
	ville := ""
	if req.Ville != nil {
		ville = *req.Ville
	}

	q5 := req.Q5CultureFeatures
	if q5 == nil {
		q5 = []string{}
	}
	q6 := req.Q6Features
	if q6 == nil {
		q6 = []string{}
	}

	return Response{
		IPHash:            ipHash,
		Sexe:              req.Sexe,
		Age:               req.Age,
		Ville:             ville,
		Q1Usage:           req.Q1Usage,
		Q2Interet:         req.Q2Interet,
		Q3Pourquoi:        optionalText(req.Q3Pourquoi),
		Q4Culture:         req.Q4Culture,
		Q5CultureFeatures: q5,
		Q6Features:        q6,
		Q7Fuir:            optionalText(req.Q7Fuir),
		Q8Rester:          optionalText(req.Q8Rester),
		Q9Style:           req.Q9Style,
		Q10Accroche:       req.Q10Accroche,
		Langue:            req.Langue,
	}
}

func optionalText(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

// Report types

type OpenResponse struct {
	ID   string    `json:"id"`
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

type OpenResponses struct {
	Q3 []OpenResponse `json:"q3"`
	Q7 []OpenResponse `json:"q7"`
	Q8 []OpenResponse `json:"q8"`
}

// Report is the aggregate view served to the stats dashboard.
type Report struct {
	TotalResponses int            `json:"totalResponses"`
	AverageAge     int            `json:"averageAge"`
	SexeStats      map[string]int `json:"sexeStats"`
	Q1Stats        map[string]int `json:"q1Stats"`
	Q2Stats        map[string]int `json:"q2Stats"`
	Q4Stats        map[string]int `json:"q4Stats"`
	Q5Counts       map[string]int `json:"q5Counts"`
	Q6Counts       map[string]int `json:"q6Counts"`
	Q9Stats        map[string]int `json:"q9Stats"`
	Q10Stats       map[string]int `json:"q10Stats"`
	OpenResponses  OpenResponses  `json:"openResponses"`
	RawData        []Response     `json:"rawData"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
