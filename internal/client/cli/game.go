package cli

import (
	"context"
	"log"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/gamefolio/internal/client/models"
	"github.com/dmitrijs2005/gamefolio/internal/common"
	"github.com/dmitrijs2005/gamefolio/internal/filex"
	"github.com/dmitrijs2005/gamefolio/internal/netx"
)

// resolveImage turns the user's image input into a value the store accepts.
// URLs and server-relative asset paths pass through. A local file is
// uploaded to object storage through a presigned URL when the server offers
// one, otherwise inlined as a data URI (subject to the size cap).
func (a *App) resolveImage(ctx context.Context, input string) (string, error) {
	if input == "" || strings.HasPrefix(input, "http://") ||
		strings.HasPrefix(input, "https://") || strings.HasPrefix(input, "/") {
		return input, nil
	}

	if _, presigned, err := a.store.PresignImage(ctx); err == nil {
		data, contentType, err := filex.ReadImage(input)
		if err != nil {
			return "", err
		}
		if err := netx.UploadToPresignedURL(ctx, presigned, data, contentType); err != nil {
			return "", err
		}
		u, err := url.Parse(presigned)
		if err != nil {
			return "", err
		}
		u.RawQuery = ""
		return u.String(), nil
	}

	return filex.ImageDataURI(input)
}

func (a *App) requirePrivilege() bool {
	if a.isPrivileged() {
		return true
	}
	printlnFn("Admin privilege required, use 'login' first")
	return false
}

func (a *App) Add(ctx context.Context) error {
	if !a.requirePrivilege() {
		return common.ErrUnauthorized
	}

	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	description, err := GetMultiline(a.reader, "Description", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	category, err := GetSimpleText(a.reader, "Category", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	image, err := GetSimpleText(a.reader, "Image (URL or local file)", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	link, err := GetSimpleText(a.reader, "Link (empty for none)", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	image, err = a.resolveImage(ctx, image)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	if link == "" {
		link = "#"
	}

	err = a.session.Add(ctx, models.GameFields{
		Title:       title,
		Description: description,
		Image:       image,
		Category:    category,
		Link:        link,
	})
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	a.registry.Register(category)
	printlnFn("Game added")
	return nil
}

func (a *App) Edit(ctx context.Context) error {
	if !a.requirePrivilege() {
		return common.ErrUnauthorized
	}

	id, err := GetSimpleText(a.reader, "Enter game id to edit", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	current, ok := a.session.Lookup(id)
	if !ok {
		printlnFn("No game with id", id)
		return nil
	}

	title, err := GetTextDefault(a.reader, "Title", current.Title, a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	description, err := GetTextDefault(a.reader, "Description", current.Description, a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	category, err := GetTextDefault(a.reader, "Category", current.Category, a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	image, err := GetTextDefault(a.reader, "Image (URL or local file)", current.Image, a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	link, err := GetTextDefault(a.reader, "Link", current.Link, a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if image != current.Image {
		image, err = a.resolveImage(ctx, image)
		if err != nil {
			log.Printf("Error: %s", err.Error())
			return err
		}
	}

	// An edited game carries the entered text verbatim from now on, so the
	// derivation key is dropped and locale overlay no longer applies.
	err = a.session.Edit(ctx, id, models.GameFields{
		Title:       title,
		Description: description,
		Image:       image,
		Category:    category,
		Link:        link,
	})
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	a.registry.Register(category)
	printlnFn("Game updated")
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	if !a.requirePrivilege() {
		return common.ErrUnauthorized
	}

	id, err := GetSimpleText(a.reader, "Enter game id to delete", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	confirm, err := GetSimpleText(a.reader, "Type 'delete' to confirm", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if confirm != "delete" {
		printlnFn("Cancelled")
		return nil
	}

	if err := a.session.Remove(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	printlnFn("Game deleted")
	return nil
}

func (a *App) AddCategory(ctx context.Context) error {
	label, err := GetSimpleText(a.reader, "New category label", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if label == "" {
		printlnFn("Label must not be empty")
		return nil
	}
	a.registry.Register(label)
	printlnFn("Category registered:", label)
	return nil
}
