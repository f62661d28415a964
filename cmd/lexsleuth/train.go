package main

import (
	"os"
	"strings"

	"github.com/k0kubun/pp/v3"

	"github.com/lexsleuth/lexsleuth/internal/modelstore"
	"github.com/lexsleuth/lexsleuth/internal/modelstore/sqlitestore"
	"github.com/lexsleuth/lexsleuth/internal/obslog"
	"github.com/lexsleuth/lexsleuth/internal/train"
	"github.com/lexsleuth/lexsleuth/internal/trainconfig"
)

type trainCmd struct {
	Args struct {
		Manifest string `positional-arg-name:"manifest.yaml" required:"1"`
	} `positional-args:"yes"`
}

func (t *trainCmd) Execute(args []string) error {
	obslog.InitVerbosity(*verbose)

	cfg, err := trainconfig.Load(t.Args.Manifest)
	if err != nil {
		return err
	}
	if *verbose {
		pp.Println(cfg)
	}

	baked, err := train.Run(cfg)
	if err != nil {
		return err
	}

	if strings.HasSuffix(cfg.Output, ".go") {
		return writeBakedSource(cfg.Output, baked)
	}
	return sqlitestore.Save(cfg.Output, baked)
}

func writeBakedSource(path string, baked modelstore.Baked) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return modelstore.WriteBakedGo(f, "bakedmodel", baked)
}
