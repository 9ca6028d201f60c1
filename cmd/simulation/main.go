// Simulation walks the console client core through the user flows the admin
// UI offers: list, create via the two-step wizard, edit, and delete retried
// until the unreliable channel lets it through. Toasts render to the
// terminal.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"ai-assistant-admin-be/internal/bootstrap"
	"ai-assistant-admin-be/internal/config"
	"ai-assistant-admin-be/internal/dto"
	"ai-assistant-admin-be/internal/entity"
	"ai-assistant-admin-be/pkg/console"
	"ai-assistant-admin-be/pkg/console/wizard"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	ctx := context.Background()

	toaster := console.NewConsoleToaster(container.PubSub)
	if err := toaster.Run(ctx); err != nil {
		log.Fatalf("Failed to start toaster: %v", err)
	}

	gateway := console.NewServiceGateway(container.AssistantService)
	client := console.NewClient(gateway, console.NewBusNotifier(container.PubSub), cfg.Cache.StalenessWindow)
	wiz := wizard.NewMachine(client, container.Validator)

	// 1. Initial list (seeded records)
	printList(ctx, client)

	// 2. Create a third assistant through the wizard
	wiz.OpenCreate()
	draft := wiz.Draft()
	draft.Name = "Bot X"
	draft.Language = entity.LanguageEnglish
	draft.Tone = entity.ToneCasual
	draft.ResponseLength = dto.ResponseLengthRequest{Short: 40, Medium: 40, Long: 20}
	wiz.SetDraft(draft)
	if err := wiz.Next(); err != nil {
		log.Fatalf("Wizard step 1 rejected: %v", err)
	}
	created, err := wiz.Submit(ctx)
	if err != nil {
		log.Fatalf("Wizard submit failed: %v", err)
	}
	printList(ctx, client)

	// 3. Edit the first seeded record's tone
	assistants, _ := client.Assistants(ctx)
	wiz.OpenEdit(assistants[0])
	draft = wiz.Draft()
	draft.Tone = entity.ToneCasual
	wiz.SetDraft(draft)
	if err := wiz.Next(); err != nil {
		log.Fatalf("Wizard step 1 rejected: %v", err)
	}
	if _, err := wiz.Submit(ctx); err != nil {
		log.Fatalf("Wizard submit failed: %v", err)
	}
	printList(ctx, client)

	// 4. Delete the created assistant, retrying through transient failures
	for {
		if err := client.DeleteAssistant(ctx, created.Id); err == nil {
			break
		}
		time.Sleep(200 * time.Millisecond)
	}
	printList(ctx, client)

	// Let the toaster drain before exiting.
	time.Sleep(300 * time.Millisecond)
}

func printList(ctx context.Context, client *console.Client) {
	assistants, err := client.Assistants(ctx)
	if err != nil {
		log.Fatalf("Failed to list assistants: %v", err)
	}

	header := color.New(color.FgCyan, color.Bold)
	header.Printf("\n— Assistants (%d) —\n", len(assistants))
	for _, a := range assistants {
		fmt.Printf("  [%s] %s · %s · %s · %d/%d/%d\n",
			a.Id, a.Name, a.Language, a.Tone,
			a.ResponseLength.Short, a.ResponseLength.Medium, a.ResponseLength.Long)
	}
}
