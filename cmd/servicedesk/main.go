// @title                       Service Desk API
// @version                     1.0
// @description                 Public intake form, ITSM panel and direct messaging for the internal service desk.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"

	_ "github.com/servicedesk/service-desk/docs"
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
