package main

import "github.com/NVIDIA/spark-console/pkg/cli"

func main() {
	cli.Execute()
}
