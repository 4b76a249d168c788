package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() SubmitRequest {
	return SubmitRequest{
		Sexe:              SexeFemme,
		Age:               29,
		Q1Usage:           UsageParfois,
		Q2Interet:         InterestOui,
		Q4Culture:         CulturePeu,
		Q5CultureFeatures: []string{"clan"},
		Q6Features:        []string{},
		Q9Style:           StyleLesDeux,
		Q10Accroche:       HookFun,
		Langue:            LangFrench,
	}
}

func TestValidateSubmission_AgeBoundary(t *testing.T) {
	tests := []struct {
		age     int
		wantErr bool
	}{
		{0, true},
		{12, true},
		{13, false},
		{50, false},
		{99, false},
		{100, true},
		{MaxAgeInput, true},
		{-5, true},
	}

	for _, tt := range tests {
		req := validRequest()
		req.Age = tt.age
		err := ValidateSubmission(req)
		if tt.wantErr {
			var vErr *ValidationError
			require.Error(t, err, "age %d", tt.age)
			require.True(t, errors.As(err, &vErr), "age %d", tt.age)
			assert.Equal(t, "age", vErr.Field)
			assert.Equal(t, "Invalid age", err.Error())
		} else {
			assert.NoError(t, err, "age %d", tt.age)
		}
	}
}

func TestValidateSubmission_Enums(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *SubmitRequest)
		wantField string
	}{
		{"missing sexe", func(r *SubmitRequest) { r.Sexe = "" }, "sexe"},
		{"unknown sexe", func(r *SubmitRequest) { r.Sexe = "MALE" }, "sexe"},
		{"lowercase sexe", func(r *SubmitRequest) { r.Sexe = "femme" }, "sexe"},
		{"missing q1", func(r *SubmitRequest) { r.Q1Usage = "" }, "q1_usage"},
		{"unknown q1", func(r *SubmitRequest) { r.Q1Usage = "SOUVENT" }, "q1_usage"},
		{"unknown q2", func(r *SubmitRequest) { r.Q2Interet = "PEUT-ETRE" }, "q2_interet"},
		{"unknown q4", func(r *SubmitRequest) { r.Q4Culture = "BEAUCOUP" }, "q4_culture"},
		{"missing q9", func(r *SubmitRequest) { r.Q9Style = "" }, "q9_style"},
		{"unknown q10", func(r *SubmitRequest) { r.Q10Accroche = "DROLE" }, "q10_accroche"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := ValidateSubmission(req)
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestValidateSubmission_OptionalFieldsNotChecked(t *testing.T) {
	req := validRequest()
	req.Q5CultureFeatures = []string{"clan", "autre:danse", "whatever"}
	req.Q6Features = nil
	req.Langue = "xx"
	long := make([]byte, 5000)
	for i := range long {
		long[i] = 'a'
	}
	text := string(long)
	req.Q3Pourquoi = &text

	assert.NoError(t, ValidateSubmission(req))
}

func TestEnumValid_AllMembers(t *testing.T) {
	for _, v := range SexeValues {
		assert.True(t, v.Valid(), v)
	}
	for _, v := range UsageValues {
		assert.True(t, v.Valid(), v)
	}
	for _, v := range InterestValues {
		assert.True(t, v.Valid(), v)
	}
	for _, v := range CultureValues {
		assert.True(t, v.Valid(), v)
	}
	for _, v := range StyleValues {
		assert.True(t, v.Valid(), v)
	}
	for _, v := range HookValues {
		assert.True(t, v.Valid(), v)
	}
}

func TestNewResponse_Normalization(t *testing.T) {
	req := validRequest()

	r := NewResponse(req, "abc")

	assert.Equal(t, "abc", r.IPHash)
	assert.Equal(t, "", r.Ville)
	assert.Nil(t, r.Q3Pourquoi)
	assert.Nil(t, r.Q7Fuir)
	assert.Nil(t, r.Q8Rester)
	assert.Equal(t, []string{"clan"}, r.Q5CultureFeatures)
	assert.NotNil(t, r.Q6Features)
	assert.Empty(t, r.Q6Features)

	empty := ""
	ville := "Toulouse"
	why := "pour rencontrer"
	req.Ville = &ville
	req.Q3Pourquoi = &why
	req.Q7Fuir = &empty
	req.Q6Features = nil

	r = NewResponse(req, "abc")

	assert.Equal(t, "Toulouse", r.Ville)
	require.NotNil(t, r.Q3Pourquoi)
	assert.Equal(t, why, *r.Q3Pourquoi)
	assert.Nil(t, r.Q7Fuir, "empty free text should be stored as null")
	assert.Equal(t, []string{}, r.Q6Features)

	req.Ville = &empty
	assert.Equal(t, "", NewResponse(req, "abc").Ville)
}

func TestValidateSubmission_AgeBoundsFollowConstants(t *testing.T) {
	tests := []struct {
		age     int
		wantErr bool
	}{
		{MinAge - 1, true},
		{MinAge, false},
		{MaxAge, false},
		{MaxAge + 1, true},
	}

	for _, tt := range tests {
		req := validRequest()
		req.Age = tt.age

		err := ValidateSubmission(req)
		if !tt.wantErr {
			assert.NoError(t, err, "age %d", tt.age)
			continue
		}

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr), "age %d", tt.age)
		assert.Equal(t, "age", vErr.Field)
		assert.Equal(t, "age", vErr.Reason)
	}
}

func TestValidateSubmission_Reason(t *testing.T) {
	req := validRequest()
	req.Q2Interet = ""

	var vErr *ValidationError
	require.True(t, errors.As(ValidateSubmission(req), &vErr))
	assert.Equal(t, "q2_interet", vErr.Field)
	assert.Equal(t, "required", vErr.Reason)

	req = validRequest()
	req.Q2Interet = "PEUT-ETRE"

	require.True(t, errors.As(ValidateSubmission(req), &vErr))
	assert.Equal(t, "q2_interet", vErr.Field)
	assert.Equal(t, "enum", vErr.Reason)
	assert.Equal(t, "Invalid q2_interet", vErr.Error())
}
