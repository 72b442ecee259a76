package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"

	"github.com/avoronin/go-sync-keeper/internal/client"
	"github.com/avoronin/go-sync-keeper/internal/config"
	"github.com/avoronin/go-sync-keeper/internal/service"
	"github.com/avoronin/go-sync-keeper/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
	codeStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder())
)

func dispatch(ctx context.Context, app *client.App, cfg *config.ClientConfig, cmd string, args []string) error {
	svcs := app.Services()

	switch cmd {
	case "bootstrap":
		passphrase := ""
		if len(args) > 0 {
			passphrase = args[0]
		}
		sc, err := svcs.Pairing.BootstrapMaster(ctx, cfg.Transport.APIURL, passphrase)
		if err != nil {
			return err
		}
		fmt.Println(okStyle.Render("cluster created, this device is the master"))
		fmt.Println(dimStyle.Render("device id: " + sc.DeviceID))
		return nil

	case "invite":
		session, err := svcs.Pairing.Initiate(ctx)
		if err != nil {
			return err
		}
		fmt.Println(titleStyle.Render("Pairing code"))
		fmt.Println(codeStyle.Render(session.ShortCode))
		fmt.Println(dimStyle.Render("expires " + session.ExpiresAt.Local().Format(time.Kitchen)))
		if err := clipboard.WriteAll(session.ShortCode); err == nil {
			fmt.Println(dimStyle.Render("copied to clipboard"))
		}
		return nil

	case "join":
		if len(args) < 1 {
			return fmt.Errorf("usage: join <short-code>")
		}
		if _, err := svcs.Pairing.Claim(ctx, strings.ToUpper(args[0])); err != nil {
			return err
		}
		sc, err := svcs.Pairing.RegisterSlave(ctx)
		if err != nil {
			return err
		}
		fmt.Println(okStyle.Render("paired as slave of " + sc.MasterID))
		return nil

	case "status":
		return printStatus(ctx, svcs)

	case "devices":
		state, err := svcs.Membership.Refresh(ctx)
		if err != nil {
			return err
		}
		printRoster(state)
		return nil

	case "rename":
		if len(args) < 1 {
			return fmt.Errorf("usage: rename <name>")
		}
		if err := svcs.Pairing.Rename(ctx, strings.Join(args, " ")); err != nil {
			return err
		}
		fmt.Println(okStyle.Render("device renamed"))
		return nil

	case "revoke":
		target := ""
		if len(args) > 0 {
			target = args[0]
		}
		notified, err := svcs.Revocation.Revoke(ctx, target, "revoked from cli")
		if err != nil {
			return err
		}
		if target == "" {
			fmt.Println(warnStyle.Render("this device left the cluster, local credentials wiped"))
		} else {
			fmt.Println(okStyle.Render(fmt.Sprintf("device %s revoked, %d peers notified", target, notified)))
		}
		return nil

	case "put":
		if len(args) < 2 {
			return fmt.Errorf("usage: put <record-id|-> <data>")
		}
		id := args[0]
		if id == "-" {
			id = ""
		}
		rec, err := svcs.SyncEngine.SaveRecord(ctx, id, models.CipheredRecord(args[1]))
		if err != nil {
			return err
		}
		fmt.Println(okStyle.Render("saved " + rec.RecordID))
		return svcs.SyncEngine.PushCycle(ctx)

	case "rm":
		if len(args) < 1 {
			return fmt.Errorf("usage: rm <record-id>")
		}
		if err := svcs.SyncEngine.DeleteRecord(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println(okStyle.Render("deleted " + args[0]))
		return svcs.SyncEngine.PushCycle(ctx)

	case "list":
		recs, err := app.Records(ctx, 0)
		if err != nil {
			return err
		}
		fmt.Println(titleStyle.Render("Records"))
		for _, r := range recs {
			fmt.Printf("%-38s %s\n", r.RecordID, dimStyle.Render("modified "+r.ModifiedAt.Local().Format(time.Stamp)))
		}
		return nil

	case "sync":
		if err := svcs.SyncEngine.PushCycle(ctx); err != nil {
			return err
		}
		if err := svcs.SyncEngine.PullCycle(ctx); err != nil {
			return err
		}
		fmt.Println(okStyle.Render("sync complete"))
		return nil

	default:
		return fmt.Errorf("unknown command %q (run, bootstrap, invite, join, status, devices, rename, revoke, put, rm, list, sync)", cmd)
	}
}

func printStatus(ctx context.Context, svcs *service.ClientServices) error {
	if err := svcs.Heartbeat.Tick(ctx); err != nil {
		fmt.Println(warnStyle.Render("heartbeat failed: " + err.Error()))
	}
	state := svcs.Membership.Cached()
	if state.MasterAlive {
		fmt.Println(okStyle.Render("master alive"))
	} else {
		fmt.Println(warnStyle.Render("master unreachable"))
	}
	fmt.Println(dimStyle.Render("promotion state: " + string(svcs.Promotion.State())))
	printRoster(state)
	return nil
}

func printRoster(state models.ClusterState) {
	fmt.Println(titleStyle.Render("Devices"))
	for _, d := range state.Devices {
		line := fmt.Sprintf("%-38s %-8s %s", d.DeviceID, d.Role, d.Name)
		if d.Role == models.RoleMaster {
			line = okStyle.Render(line)
		}
		if d.LastSeen != nil {
			line += dimStyle.Render("  seen " + d.LastSeen.Local().Format(time.Stamp))
		}
		fmt.Println(line)
	}
}
