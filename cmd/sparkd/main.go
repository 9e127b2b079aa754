package main

import (
	"context"
	"log"

	"github.com/NVIDIA/spark-console/pkg/api"
)

func main() {
	if err := api.Serve(context.Background(), ""); err != nil {
		log.Fatal(err)
	}
}
