package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"blackjack-server/pkg/round"
)

var command = flag.String("c", "show", "specifies the command (show, delete)")

func main() {
	flag.Parse()

	id, err := uuid.Parse(flag.Arg(0))
	if err != nil {
		logrus.WithError(err).Fatal("expected a round UUID argument")
	}

	store := round.NewPostgresStore()
	ctx := context.Background()

	switch *command {
	case "show":
		rnd, err := store.Get(ctx, id)
		if err != nil {
			logrus.WithError(err).Fatal("could not load round")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rnd); err != nil {
			logrus.WithError(err).Fatal("could not encode round")
		}
	case "delete":
		if err := store.Delete(ctx, id); err != nil {
			logrus.WithError(err).Fatal("could not delete round")
		}

		fmt.Printf("Deleted round %s\n", id)
	default:
		logrus.WithField("command", *command).Fatal("unknown command")
	}
}
