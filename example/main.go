package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/theflywheel/dhash"
	"github.com/theflywheel/dhash/store"
)

type counter struct {
	count int
}

func main() {
	logger := dhash.NewTextLogger(slog.LevelDebug)

	// An optional YAML file overrides the sizing policy
	cfg := dhash.DefaultConfig()
	if len(os.Args) > 1 {
		var err error
		cfg, err = dhash.LoadConfig(os.Args[1])
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	tbl := dhash.New[int](0, dhash.WithConfig(cfg), dhash.WithLogger(logger))
	fmt.Printf("Table created: capacity=%d\n", tbl.Capacity())

	for i := 0; i < 50; i++ {
		tbl.Insert(fmt.Sprintf("key-%d", i), i*100)
	}
	fmt.Printf("Inserted 50 keys: capacity=%d load=%d%%\n", tbl.Capacity(), tbl.Load())

	for i := 0; i < 60; i += 10 {
		key := fmt.Sprintf("key-%d", i)
		if v, ok := tbl.Get(key); ok {
			fmt.Printf("%s => %d\n", key, v)
		} else {
			fmt.Printf("%s not found\n", key)
		}
	}

	tbl.Insert("key-2", 999)
	if v, ok := tbl.Get("key-2"); ok {
		fmt.Printf("Updated key-2 => %d\n", v)
	}

	for i := 0; i < 45; i++ {
		tbl.Delete(fmt.Sprintf("key-%d", i))
	}
	fmt.Printf("Deleted 45 keys: %+v\n", tbl.Stats())

	s := store.New(&counter{}, store.WithLogger(logger))
	s.CreateAction("INCREMENT", func(c *counter) *counter {
		c.count++
		return c
	})
	s.Subscribe(func(c *counter, action string) {
		fmt.Printf("%s -> count=%d\n", action, c.count)
	})
	s.Dispatch("INCREMENT")
	s.Dispatch("INCREMENT")
	s.Dispatch("UNKNOWN")

	fmt.Println("Example completed successfully")
}
