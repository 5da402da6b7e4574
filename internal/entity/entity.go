package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Resume is the structured view of a candidate's resume produced by an
// external extraction collaborator. It is treated as immutable once handed
// to the scoring engine.
type Resume struct {
	RawText         string            `json:"raw_text,omitempty"`
	Name            string            `json:"name,omitempty"`
	Email           string            `json:"email,omitempty"`
	Phone           string            `json:"phone,omitempty"`
	Skills          []string          `json:"skills,omitempty"`
	Experience      []ExperienceEntry `json:"experience,omitempty"`
	Education       []EducationEntry  `json:"education,omitempty"`
	ExperienceYears int               `json:"experience_years,omitempty"`
	Certifications  []string          `json:"certifications,omitempty"`
	DetectedNames   []string          `json:"detected_names,omitempty"`
}

// ExperienceEntry is a single work history item.
type ExperienceEntry struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry is a single education history item.
type EducationEntry struct {
	Degree string `json:"degree,omitempty"`
}

// JobDescription is the structured view of a job posting.
type JobDescription struct {
	RawText            string   `json:"raw_text,omitempty"`
	Title              string   `json:"title,omitempty"`
	RequiredSkills     []string `json:"required_skills,omitempty"`
	PreferredSkills    []string `json:"preferred_skills,omitempty"`
	ExperienceRequired string   `json:"experience_required,omitempty"`
	EducationRequired  string   `json:"education_required,omitempty"`
	Responsibilities   []string `json:"responsibilities,omitempty"`
	Qualifications     []string `json:"qualifications,omitempty"`
}

// IsEmpty reports whether the resume carries nothing to analyze: no raw text
// and no structured fields at all.
func (r *Resume) IsEmpty() bool {
	if r == nil {
		return true
	}
	return strings.TrimSpace(r.RawText) == "" &&
		len(r.Skills) == 0 &&
		len(r.Experience) == 0 &&
		len(r.Education) == 0 &&
		r.ExperienceYears == 0 &&
		len(r.Certifications) == 0
}

// IsEmpty reports whether the job description carries nothing to analyze.
func (j *JobDescription) IsEmpty() bool {
	if j == nil {
		return true
	}
	return strings.TrimSpace(j.RawText) == "" &&
		strings.TrimSpace(j.Title) == "" &&
		len(j.RequiredSkills) == 0 &&
		len(j.PreferredSkills) == 0
}

// DecodeResume converts a loosely typed payload (as produced by extraction
// collaborators that hand over map[string]any) into a Resume.
func DecodeResume(payload map[string]any) (*Resume, error) {
	var resume Resume
	if err := decodeEntity(payload, &resume); err != nil {
		return nil, fmt.Errorf("decoding resume: %w", err)
	}
	return &resume, nil
}

// DecodeJobDescription converts a loosely typed payload into a JobDescription.
func DecodeJobDescription(payload map[string]any) (*JobDescription, error) {
	var job JobDescription
	if err := decodeEntity(payload, &job); err != nil {
		return nil, fmt.Errorf("decoding job description: %w", err)
	}
	return &job, nil
}

func decodeEntity(payload map[string]any, result any) error {
	cfg := &mapstructure.DecoderConfig{
		Metadata:         nil,
		Result:           result,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	return decoder.Decode(payload)
}

// ParseResume unmarshals a JSON document into a Resume.
func ParseResume(data []byte) (*Resume, error) {
	var resume Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("parsing resume json: %w", err)
	}
	return &resume, nil
}

// ParseJobDescription unmarshals a JSON document into a JobDescription.
func ParseJobDescription(data []byte) (*JobDescription, error) {
	var job JobDescription
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parsing job description json: %w", err)
	}
	return &job, nil
}
