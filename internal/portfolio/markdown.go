// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package portfolio

import (
	"fmt"
	"strings"
)

// =============================================================================
// PAGE MARKDOWN
// =============================================================================

// SectionMarkdown renders one page section as markdown.
func (p *Profile) SectionMarkdown(s Section) string {
	var sb strings.Builder

	switch s {
	case SectionHome:
		fmt.Fprintf(&sb, "# %s\n\n", strings.ToUpper(p.PromptHandle()))
		fmt.Fprintf(&sb, "## %s\n\n", p.Role)
		if p.Tagline != "" {
			sb.WriteString(p.Tagline + "\n\n")
		}
		sb.WriteString("Press `t` to open the terminal.\n")

	case SectionAbout:
		fmt.Fprintf(&sb, "## %s\n\n", s.Title())
		for _, para := range p.About {
			sb.WriteString(para + "\n\n")
		}
		if len(p.Skills) > 0 {
			sb.WriteString("**Skills:** ")
			codes := make([]string, len(p.Skills))
			for i, skill := range p.Skills {
				codes[i] = "`" + skill + "`"
			}
			sb.WriteString(strings.Join(codes, " ") + "\n")
		}

	case SectionProjects:
		fmt.Fprintf(&sb, "## %s\n\n", s.Title())
		sb.WriteString("다양한 프로젝트를 통해 쌓은 경험과 기술을 소개합니다.\n\n")
		for _, pr := range p.Projects {
			fmt.Fprintf(&sb, "### %s\n\n", pr.Title)
			if pr.Description != "" {
				fmt.Fprintf(&sb, "*%s*\n\n", pr.Description)
			}
			if pr.Details != "" {
				sb.WriteString(pr.Details + "\n\n")
			}
			var meta []string
			if pr.Role != "" {
				meta = append(meta, "**Role:** "+pr.Role)
			}
			if pr.Date != "" {
				meta = append(meta, "**Date:** "+pr.Date)
			}
			if len(pr.Tags) > 0 {
				meta = append(meta, "**Tags:** "+pr.TagLine())
			}
			if link := usableURL(pr.GitHubURL); link != "" {
				meta = append(meta, "**GitHub:** "+link)
			}
			if link := usableURL(pr.DemoURL); link != "" {
				meta = append(meta, "**Demo:** "+link)
			}
			for _, m := range meta {
				sb.WriteString("- " + m + "\n")
			}
			sb.WriteString("\n")
		}

	case SectionReviews:
		fmt.Fprintf(&sb, "## %s\n\n", s.Title())
		sb.WriteString("함께 일했던 동료들의 리뷰입니다.\n\n")
		for _, r := range p.Reviews {
			fmt.Fprintf(&sb, "> %s\n>\n> — %s", r.Text, r.Author)
			if r.Position != "" {
				sb.WriteString(", " + r.Position)
			}
			sb.WriteString("\n\n")
		}

	case SectionContact:
		fmt.Fprintf(&sb, "## %s\n\n", s.Title())
		sb.WriteString("새로운 프로젝트나 협업 기회에 대해 이야기하고 싶으시다면 언제든 연락주세요.\n\n")
		if p.Contact.Email != "" {
			sb.WriteString("- **Email:** " + p.Contact.Email + "\n")
		}
		if p.Contact.GitHub != "" {
			sb.WriteString("- **GitHub:** " + p.Contact.GitHub + "\n")
		}
		if p.Contact.LinkedIn != "" {
			sb.WriteString("- **LinkedIn:** " + p.Contact.LinkedIn + "\n")
		}
		if p.Location != "" {
			sb.WriteString("- **Location:** " + p.Location + "\n")
		}
		if p.Hours != "" {
			sb.WriteString("- **Working Hours:** " + p.Hours + "\n")
		}
	}

	return sb.String()
}

// usableURL drops placeholder links ("#", empty).
func usableURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" || u == "#" {
		return ""
	}
	return u
}
