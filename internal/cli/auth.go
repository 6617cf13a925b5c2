package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/Makepad-fr/tada/internal/auth"
	"github.com/Makepad-fr/tada/internal/ui"
)

func runAuth(a []string, opt Options) int {
	if len(a) == 0 {
		ui.Fail("usage: todo auth <login|logout|status|whoami>")
		return exitUsage
	}
	switch a[0] {
	case "login":
		return doAuthLogin(opt)
	case "logout":
		return doAuthLogout()
	case "status":
		return doAuthStatus()
	case "whoami":
		return doAuthWhoAmI()
	default:
		ui.Fail("usage: todo auth <login|logout|status|whoami>")
		return exitUsage
	}
}

func doAuthLogin(opt Options) int {
	fmt.Fprint(opt.Out, "Paste your token: ")
	token, err := readToken(opt)
	if err != nil {
		ui.Fail("read token: " + err.Error())
		return exitError
	}
	if err := auth.SetToken(token, nil); err != nil {
		ui.Fail("save token: " + err.Error())
		return exitError
	}
	ui.OK("logged in")
	return exitOK
}

// readToken hides input on a terminal and reads one line otherwise.
func readToken(opt Options) (string, error) {
	if f, ok := opt.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(opt.Out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}
	line, err := bufio.NewReader(opt.In).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func doAuthLogout() int {
	ti, _ := auth.GetToken()
	if ti != nil && ti.Source == "env" {
		ui.OK("token is provided by " + auth.EnvToken + " env var (nothing to delete)")
		return exitOK
	}
	if err := auth.DeleteToken(); err != nil {
		ui.Fail("logout: " + err.Error())
		return exitError
	}
	ui.OK("logged out")
	return exitOK
}

func doAuthStatus() int {
	ti, err := auth.GetToken()
	if err != nil {
		ui.Fail(err.Error())
		return exitError
	}
	if ti == nil {
		ui.Println(ui.Current().Muted.Render("not logged in"))
		ui.Println("Run: todo auth login")
		return exitOK
	}
	ui.Printf("source: %s\n", ti.Source)
	if ti.ExpiresAt != nil {
		ui.Printf("expires: %s\n", ti.ExpiresAt.UTC().Format(time.RFC3339))
		if ti.Expired(time.Now()) {
			ui.Warn("token has expired")
		}
	} else {
		ui.Println("expires: (unknown)")
	}
	ui.Println("env override: " + auth.EnvToken)
	return exitOK
}

// whoami decodes a JWT locally (unverified); opaque tokens print basic info.
func doAuthWhoAmI() int {
	ti, _ := auth.GetToken()
	if ti == nil {
		ui.Fail("not logged in. Run: todo auth login")
		return exitUsage
	}
	if claims, err := auth.Claims(ti.Token); err == nil {
		b, err := json.MarshalIndent(claims, "", "  ")
		if err == nil {
			ui.Println("JWT payload:")
			ui.Println(string(b))
			return exitOK
		}
	}
	ui.Println("Opaque token (cannot introspect locally).")
	ui.Println("source:", ti.Source)
	return exitOK
}
