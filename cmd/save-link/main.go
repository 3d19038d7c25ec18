package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/vbncursed/vkr/wallet-service/internal/bootstrap"
	icfg "github.com/vbncursed/vkr/wallet-service/internal/config"
	"github.com/vbncursed/vkr/wallet-service/internal/models"
	issvc "github.com/vbncursed/vkr/wallet-service/internal/service"
)

func main() {
	var ticketPath, classSuffix, objectSuffix string
	var existing, insert bool
	flag.StringVar(&ticketPath, "ticket", "", "ticket JSON file")
	flag.StringVar(&classSuffix, "class", "", "class suffix (default CLASS_SUFFIX)")
	flag.StringVar(&objectSuffix, "object", "", "object suffix (default random)")
	flag.BoolVar(&existing, "existing", false, "print a link for the demo set of existing objects")
	flag.BoolVar(&insert, "insert", false, "create the object in the registry and link to it (overrides INSERT_OBJECT)")
	flag.Parse()

	cfg := icfg.Load()
	icfg.SetupLogging(cfg.LogLevel, cfg.LogFormat)
	if insert {
		cfg.InsertObject = true
	}
	if cfg.IssuerID == "" {
		log.Fatal("ISSUER_ID is required")
	}

	ctx := context.Background()
	cred, pool, err := bootstrap.Credential(ctx, cfg)
	if err != nil {
		log.Fatalf("credentials: %v", err)
	}
	if pool != nil {
		defer pool.Close()
	}
	reg, err := bootstrap.Registry(ctx, cfg, cred)
	if err != nil {
		log.Fatalf("registry: %v", err)
	}
	svc := issvc.New(reg, cred, issvc.RealClock{}, issvc.JWTSigner{}, bootstrap.ServiceOptions(cfg))

	if existing {
		res, err := svc.IssueExistingLink(ctx, nil)
		if err != nil {
			log.Fatalf("link: %v", err)
		}
		fmt.Println(res.URL)
		return
	}

	if ticketPath == "" {
		log.Fatal("-ticket is required")
	}
	raw, err := os.ReadFile(ticketPath)
	if err != nil {
		log.Fatalf("read: %v", err)
	}
	var ticket models.Ticket
	if err := json.Unmarshal(raw, &ticket); err != nil {
		log.Fatalf("decode ticket: %v", err)
	}

	res, err := svc.IssueSaveLink(ctx, issvc.IssueCommand{ClassSuffix: classSuffix, ObjectSuffix: objectSuffix, Ticket: ticket})
	if err != nil {
		log.Fatalf("link: %v", err)
	}
	for _, w := range res.Warnings {
		log.Warn(w.Error())
	}
	fmt.Println("Object ID:", res.ObjectID)
	if res.ObjectInserted {
		fmt.Println("Object created in registry")
	}
	fmt.Println("Add to Google Wallet:", res.URL)
}
