package cmd

type Config struct {
	HTTPPort       string
	KitchenWorkers int
}
