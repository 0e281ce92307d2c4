// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package portfolio holds the profile shown by the portfolio page and
// answered by the terminal: who the developer is, their skills, projects,
// reviews and contact links.
package portfolio

import (
	"strings"
)

// =============================================================================
// PROFILE
// =============================================================================

// Profile is the content of the portfolio.
type Profile struct {
	Name     string `toml:"name"`
	Handle   string `toml:"handle"`
	Role     string `toml:"role"`
	Tagline  string `toml:"tagline"`
	Location string `toml:"location"`
	Hours    string `toml:"hours"`

	// Intro is the short self-introduction used by the terminal
	Intro []string `toml:"intro"`

	// About is the long-form about section of the page
	About []string `toml:"about"`

	Skills   []string  `toml:"skills"`
	Contact  Contact   `toml:"contact"`
	Projects []Project `toml:"projects"`
	Reviews  []Review  `toml:"reviews"`
}

// Contact lists ways to reach the developer.
type Contact struct {
	Email    string `toml:"email" json:"email"`
	GitHub   string `toml:"github" json:"github"`
	LinkedIn string `toml:"linkedin" json:"linkedin"`
}

// Project is one portfolio project.
type Project struct {
	ID          int      `toml:"id"`
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Tags        []string `toml:"tags"`
	Role        string   `toml:"role"`
	Date        string   `toml:"date"`
	DemoURL     string   `toml:"demo_url"`
	GitHubURL   string   `toml:"github_url"`
	Details     string   `toml:"details"`
}

// Review is a testimonial from a colleague.
type Review struct {
	ID       int    `toml:"id"`
	Text     string `toml:"text"`
	Author   string `toml:"author"`
	Position string `toml:"position"`
}

// PromptHandle returns the user part of the terminal prompt.
func (p *Profile) PromptHandle() string {
	if p.Handle != "" {
		return p.Handle
	}
	return "guest"
}

// Summary returns "Name - Role", used by whoami.
func (p *Profile) Summary() string {
	if p.Role == "" {
		return p.Name
	}
	return p.Name + " - " + p.Role
}

// TagLine returns a project's tags joined for display.
func (pr Project) TagLine() string {
	return strings.Join(pr.Tags, ", ")
}

// =============================================================================
// SECTIONS
// =============================================================================

// Section is an anchor on the portfolio page.
type Section string

const (
	SectionHome     Section = "home"
	SectionAbout    Section = "about"
	SectionProjects Section = "projects"
	SectionReviews  Section = "reviews"
	SectionContact  Section = "contact"
)

// Sections lists the page sections in display order.
var Sections = []Section{
	SectionHome,
	SectionAbout,
	SectionProjects,
	SectionReviews,
	SectionContact,
}

// Title returns the section's heading.
func (s Section) Title() string {
	switch s {
	case SectionHome:
		return "Home"
	case SectionAbout:
		return "About Me"
	case SectionProjects:
		return "Selected Projects"
	case SectionReviews:
		return "Reviews"
	case SectionContact:
		return "Let's Work Together"
	default:
		return string(s)
	}
}

// ParseSection accepts "about", "#about", "/#about" and "/" (home).
func ParseSection(s string) (Section, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimPrefix(s, "/")
	s = strings.TrimPrefix(s, "#")
	if s == "" {
		return SectionHome, true
	}
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, true
		}
	}
	return "", false
}
