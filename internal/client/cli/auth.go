package cli

import (
	"context"
	"log"

	"github.com/dmitrijs2005/gamefolio/internal/common"
)

// Login prompts for the admin secret and verifies it against the gate.
// The secret bytes are wiped as soon as verification finishes.
func (a *App) Login(ctx context.Context) error {
	secret, err := GetPassword(a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(secret)

	ok, err := a.gate.Verify(secret)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	if !ok {
		printlnFn("Access denied")
		return nil
	}
	printlnFn("Admin privilege granted")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.gate.Revoke()
	printlnFn("Logged out")
	return nil
}
