// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/jeranaias/folio-tui/internal/portfolio"
)

// =============================================================================
// BUILT-IN CATALOGS
// =============================================================================

// Navigator moves the portfolio view to a section. It is invoked from a
// confirmed action, off the UI loop.
type Navigator interface {
	Navigate(section portfolio.Section)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(portfolio.Section)

// Navigate implements Navigator.
func (f NavigatorFunc) Navigate(s portfolio.Section) { f(s) }

// Variant selects one of the two built-in command tables.
type Variant int

const (
	// VariantPage is the full-screen terminal page. Section commands ask
	// for y/n confirmation before navigating.
	VariantPage Variant = iota

	// VariantOverlay is the terminal opened over the portfolio page. It
	// has no navigation; "exit" closes it.
	VariantOverlay
)

// String returns the variant's config name.
func (v Variant) String() string {
	if v == VariantOverlay {
		return "overlay"
	}
	return "page"
}

// ParseVariant accepts "page" and "overlay".
func ParseVariant(s string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "page", "":
		return VariantPage, true
	case "overlay":
		return VariantOverlay, true
	default:
		return VariantPage, false
	}
}

// Working directories shown by pwd.
const (
	PagePwd    = "/terminal"
	OverlayPwd = "/home/portfolio"
)

// koreanDate formats t like the ko-KR locale string, e.g.
// "2025. 1. 2. 오후 3:04:05".
func koreanDate(t time.Time) string {
	meridiem := "오전"
	if t.Hour() >= 12 {
		meridiem = "오후"
	}
	return t.Format("2006. 1. 2. ") + meridiem + t.Format(" 3:04:05")
}

// listing is what ls prints; the cat commands below serve these files.
const listing = "about.txt  skills.md  projects/  contact.json"

// CatalogOptions configures NewCatalog.
type CatalogOptions struct {
	Variant Variant

	// Navigator is required for VariantPage
	Navigator Navigator

	// Now is the time reported by date. Zero uses time.Now().
	Now time.Time
}

// NewCatalog builds the command table for a variant from a profile. The
// table is fixed for the session: date is captured once, here.
func NewCatalog(p *portfolio.Profile, opts CatalogOptions) *Table {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	if opts.Variant == VariantOverlay {
		return NewTable(overlayDefinitions(p, opts.Now)...)
	}
	nav := opts.Navigator
	if nav == nil {
		nav = NavigatorFunc(func(portfolio.Section) {})
	}
	return NewTable(pageDefinitions(p, nav, opts.Now)...)
}

func pageDefinitions(p *portfolio.Profile, nav Navigator, now time.Time) []Definition {
	goTo := func(s portfolio.Section) func() {
		return func() { nav.Navigate(s) }
	}

	defs := []Definition{
		{Name: "about", Description: "About me", Entry: WithAction{
			Content: Content{
				Heading: "👋 안녕하세요!",
				Lines:   p.Intro,
				Prompt:  "Go to about section? (y/n)",
			},
			Action: goTo(portfolio.SectionAbout),
		}},
		{Name: "skills", Description: "Technical skills", Entry: WithAction{
			Content: Content{
				Heading: "🛠 Technical Skills",
				Items:   p.Skills,
				Prompt:  "Go to skills section? (y/n)",
			},
			// Skills live in the about section of the page.
			Action: goTo(portfolio.SectionAbout),
		}},
		{Name: "projects", Description: "My projects", Entry: WithAction{
			Content: Content{
				Heading: "🚀 Recent Projects",
				Items:   projectItems(p),
				Prompt:  "Go to projects section? (y/n)",
			},
			Action: goTo(portfolio.SectionProjects),
		}},
		{Name: "contact", Description: "Contact information", Entry: WithAction{
			Content: Content{
				Heading: "📬 Contact Information",
				Items:   contactItems(p),
				Prompt:  "Go to contact section? (y/n)",
			},
			Action: goTo(portfolio.SectionContact),
		}},
		{Name: "home", Description: "Go to homepage", Entry: WithAction{
			Content: Text("Redirecting to homepage..."),
			Action:  goTo(portfolio.SectionHome),
		}},
		{Name: "clear", Description: "Clear terminal", Entry: Control{Signal: SignalClear}},
		{Name: "whoami", Entry: Plain{Content: Text(p.Summary())}},
		{Name: "pwd", Entry: Plain{Content: Text(PagePwd)}},
		{Name: "ls", Entry: Plain{Content: Text(listing)}},
		{Name: "date", Entry: Plain{Content: Text(koreanDate(now))}},
		{Name: KeywordConfirm, Entry: Plain{Content: Text(MsgExecuting)}},
		{Name: KeywordDeny, Entry: Plain{Content: Text(MsgCancelled)}},
	}
	defs = append(defs, fileDefinitions(p)...)

	help := Definition{Name: "help", Entry: Plain{Content: helpContent(defs)}}
	return append([]Definition{help}, defs...)
}

func overlayDefinitions(p *portfolio.Profile, now time.Time) []Definition {
	defs := []Definition{
		{Name: "about", Description: "개발자 소개", Entry: Plain{Content: Text(strings.Join(append([]string{"안녕하세요!"}, p.Intro...), " "))}},
		{Name: "skills", Description: "기술 스택 보기", Entry: Plain{Content: Content{
			Heading: "기술 스택:",
			Items:   p.Skills,
		}}},
		{Name: "projects", Description: "프로젝트 목록", Entry: Plain{Content: Text("프로젝트 목록을 보려면 웹사이트의 '프로젝트' 섹션을 확인하세요.")}},
		{Name: "contact", Description: "연락처 정보", Entry: Plain{Content: Content{
			Heading: "연락처:",
			Items:   contactItems(p),
		}}},
		{Name: "clear", Description: "터미널 내용 지우기", Entry: Control{Signal: SignalClear}},
		{Name: "exit", Description: "터미널 닫기", Entry: Control{Signal: SignalClose, Content: Text("Closing terminal...")}},
		{Name: "whoami", Entry: Plain{Content: Text(p.Summary())}},
		{Name: "pwd", Entry: Plain{Content: Text(OverlayPwd)}},
		{Name: "ls", Entry: Plain{Content: Text(listing)}},
		{Name: "date", Entry: Plain{Content: Text(koreanDate(now))}},
	}
	defs = append(defs, fileDefinitions(p)...)

	help := Definition{Name: "help", Entry: Plain{Content: Content{
		Heading: "사용 가능한 명령어:",
		Items:   helpItems(defs),
	}}}
	return append([]Definition{help}, defs...)
}

// fileDefinitions serves the files that ls lists.
func fileDefinitions(p *portfolio.Profile) []Definition {
	contact, err := json.MarshalIndent(p.Contact, "", "  ")
	if err != nil {
		contact = []byte("{}")
	}
	return []Definition{
		{Name: "cat about.txt", Entry: Plain{Content: Content{Lines: p.About}}},
		{Name: "cat skills.md", Entry: Plain{Content: Content{
			Code: &Code{Lang: "markdown", Source: skillsMarkdown(p)},
		}}},
		{Name: "cat contact.json", Entry: Plain{Content: Content{
			Code: &Code{Lang: "json", Source: string(contact)},
		}}},
	}
}

func helpContent(defs []Definition) Content {
	return Content{
		Heading: "Available commands:",
		Items:   helpItems(defs),
	}
}

func helpItems(defs []Definition) []string {
	var items []string
	for _, def := range defs {
		if def.Description != "" {
			items = append(items, def.Name+" - "+def.Description)
		}
	}
	return items
}

func projectItems(p *portfolio.Profile) []string {
	items := make([]string, 0, len(p.Projects))
	for _, pr := range p.Projects {
		item := pr.Title
		if tags := pr.TagLine(); tags != "" {
			item += " - " + tags
		}
		items = append(items, item)
	}
	return items
}

func contactItems(p *portfolio.Profile) []string {
	var items []string
	if p.Contact.Email != "" {
		items = append(items, "Email: "+p.Contact.Email)
	}
	if p.Contact.GitHub != "" {
		items = append(items, "GitHub: "+p.Contact.GitHub)
	}
	if p.Contact.LinkedIn != "" {
		items = append(items, "LinkedIn: "+p.Contact.LinkedIn)
	}
	return items
}

func skillsMarkdown(p *portfolio.Profile) string {
	var sb strings.Builder
	sb.WriteString("# Skills\n\n")
	for _, s := range p.Skills {
		sb.WriteString("- " + s + "\n")
	}
	return sb.String()
}

// Welcome is the banner shown when a session opens. It is not part of
// history and is dropped by clear.
func Welcome(p *portfolio.Profile, v Variant) Content {
	if v == VariantOverlay {
		return Content{
			Heading: "환영합니다! 포트폴리오 터미널입니다.",
			Lines:   []string{"명령어를 입력하세요. 도움말은 'help'를 입력하세요."},
		}
	}
	return Content{
		Heading: "Welcome to " + p.Name + "'s Portfolio Terminal",
		Lines:   []string{"Type 'help' to see available commands."},
	}
}

// PromptUser is the user shown in the prompt: the profile handle on the
// terminal page, "guest" in the overlay.
func PromptUser(p *portfolio.Profile, v Variant) string {
	if v == VariantOverlay {
		return "guest"
	}
	return p.PromptHandle()
}
