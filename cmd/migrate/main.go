package main

import (
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"

	"blackjack-server/pkg/db"
)

func main() {
	waitForDB()
	db.Migrate()
}

// waitForDB blocks until the database accepts connections.
func waitForDB() {
	timeout := time.NewTimer(time.Second * 10)
	for {
		select {
		case <-timeout.C:
			logrus.Fatal("database did not come up in time")
		default:
			dbh := func() *sql.DB {
				defer func() { _ = recover() }()
				return db.Instance()
			}()

			if dbh != nil {
				return
			}

			time.Sleep(time.Millisecond * 500)
		}
	}
}
