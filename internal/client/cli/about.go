package cli

import (
	"context"
	"log"
	"strings"

	"github.com/dmitrijs2005/gamefolio/internal/client/i18n"
	"github.com/dmitrijs2005/gamefolio/internal/client/models"
	"github.com/dmitrijs2005/gamefolio/internal/common"
)

func (a *App) Language(ctx context.Context, lang string) error {
	if lang != i18n.LangEN && lang != i18n.LangNL {
		printlnFn("Unknown locale", lang, "- using English texts")
	}
	a.session.SetLanguage(lang)
	printlnFn("Locale set to", lang)
	return nil
}

func (a *App) About(ctx context.Context) error {
	p := a.profiles.Resolve(a.session.Language())

	printlnFn(p.Subtitle)
	printlnFn(p.Bio)
	printlnFn(p.PassionTitle + ": " + p.Passion)
	printlnFn(p.SkillsTitle + ": " + strings.Join(p.Skills, ", "))
	if a.profiles.HasOverride() {
		printlnFn("(custom override active)")
	}
	return nil
}

func (a *App) SetAbout(ctx context.Context) error {
	if !a.requirePrivilege() {
		return common.ErrUnauthorized
	}

	// Current values (override or locale defaults) seed the prompts.
	cur := a.profiles.Resolve(a.session.Language())

	subtitle, err := GetTextDefault(a.reader, "Subtitle", cur.Subtitle, a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	bio, err := GetMultiline(a.reader, "Bio", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if bio == "" {
		bio = cur.Bio
	}
	passionTitle, err := GetTextDefault(a.reader, "Passion title", cur.PassionTitle, a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	passion, err := GetMultiline(a.reader, "Passion", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if passion == "" {
		passion = cur.Passion
	}
	skillsTitle, err := GetTextDefault(a.reader, "Skills title", cur.SkillsTitle, a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	skills, err := GetLines(a.reader, "Skills", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if len(skills) == 0 {
		skills = cur.Skills
	}

	err = a.profiles.Update(ctx, models.Profile{
		Bio:          bio,
		PassionTitle: passionTitle,
		Passion:      passion,
		SkillsTitle:  skillsTitle,
		Skills:       skills,
		Subtitle:     subtitle,
	})
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	printlnFn("About page updated")
	return nil
}

func (a *App) ClearAbout(ctx context.Context) error {
	if !a.requirePrivilege() {
		return common.ErrUnauthorized
	}

	if err := a.profiles.Clear(ctx); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	printlnFn("About page reset to defaults")
	return nil
}
