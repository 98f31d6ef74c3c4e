// freezerctl is a small terminal client for the freezer API.
//
// Usage:
//
//	freezerctl -server http://localhost:8080 -token <jwt> freezers
//	freezerctl ... rename <freezerId> <name>
//	freezerctl ... list [-freezer id] [-search text] [-view grid|list]
//	freezerctl ... add -freezer id -name n -desc d [-box b] [-type t] [-date RFC3339]
//	freezerctl ... get <itemId>
//	freezerctl ... delete <itemId>
//	freezerctl ... bootstrap
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"freezer-backend/internal/ui"
	"freezer-backend/pkg/client"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "API base URL")
	token := flag.String("token", os.Getenv("FREEZER_TOKEN"), "bearer token")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	api := client.New(*server, *token)
	ctx := context.Background()

	var err error
	switch args[0] {
	case "bootstrap":
		err = runBootstrap(ctx, api)
	case "freezers":
		err = runFreezers(ctx, api)
	case "rename":
		err = runRename(ctx, api, args[1:])
	case "list":
		err = runList(ctx, api, args[1:])
	case "get":
		err = runGet(ctx, api, args[1:])
	case "add":
		err = runAdd(ctx, api, args[1:])
	case "delete":
		err = runDelete(ctx, api, args[1:])
	default:
		err = fmt.Errorf("unknown command %q", args[0])
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runBootstrap(ctx context.Context, api *client.Client) error {
	created, err := api.Bootstrap(ctx)
	if err != nil {
		return err
	}
	if created {
		fmt.Println("initialized: default freezers created")
	} else {
		fmt.Println("already initialized")
	}
	return nil
}

func runFreezers(ctx context.Context, api *client.Client) error {
	freezers, err := api.ListFreezers(ctx)
	if err != nil {
		return err
	}
	for _, fz := range freezers {
		fmt.Printf("%-12s  %s\n", fz.ID, fz.Name)
	}
	return nil
}

func runRename(ctx context.Context, api *client.Client, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: rename <freezerId> <name>")
	}
	fz, err := api.RenameFreezer(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("%s renamed to %q\n", fz.ID, fz.Name)
	return nil
}

func runList(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	freezerID := fs.String("freezer", "", "filter by freezer id")
	search := fs.String("search", "", "substring filter over name and description")
	view := fs.String("view", "list", "grid or list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items, err := api.ListItems(ctx, *freezerID)
	if err != nil {
		return err
	}

	visible := ui.FilterItems(items, *freezerID, *search)
	fmt.Print(ui.Render(visible, ui.ViewMode(*view)))
	return nil
}

func runGet(ctx context.Context, api *client.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: get <itemId>")
	}
	item, err := api.GetItem(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Print(ui.Render([]client.FoodItem{item}, ui.ViewGrid))
	return nil
}

func runAdd(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	freezerID := fs.String("freezer", "", "freezer id (required)")
	name := fs.String("name", "", "item name (required)")
	desc := fs.String("desc", "", "description (required)")
	box := fs.String("box", "", "freezer box")
	itemType := fs.String("type", "", "food type")
	date := fs.String("date", "", "frozen date (RFC3339)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	item, err := api.CreateItem(ctx, client.CreateItemRequest{
		Name:        *name,
		Description: *desc,
		FreezerID:   *freezerID,
		FreezerBox:  *box,
		ItemType:    *itemType,
		FrozenDate:  *date,
	})
	if err != nil {
		return err
	}
	fmt.Printf("created %s\n", item.ID)
	return nil
}

func runDelete(ctx context.Context, api *client.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: delete <itemId>")
	}
	if err := api.DeleteItem(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}
