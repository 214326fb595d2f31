package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/bpbin/rawexplorer"
	"github.com/bpbin/rawexplorer/cursor"
	"github.com/bpbin/rawexplorer/dedup"
	"github.com/bpbin/rawexplorer/explorer"
	"github.com/bpbin/rawexplorer/schema"
)

// workspace is a loaded schema index plus, when requested, the dump.
type workspace struct {
	index *schema.Index
	root  dedup.Value
	mode  explorer.Mode
}

func (w *workspace) cursor() cursor.Cursor { return cursor.New(w.index) }

// resolve looks up a JSON Pointer in the dump.
func (w *workspace) resolve(pointer string) (dedup.Value, cursor.Cursor, explorer.Path, error) {
	p, err := explorer.ParsePointer(pointer)
	if err != nil {
		return dedup.Value{}, cursor.Cursor{}, nil, err
	}
	v, c, err := explorer.Resolve(w.root, w.cursor(), p)
	if err != nil {
		return dedup.Value{}, c, p, err
	}
	return v, c, p, nil
}

// load reads the schema and, with withDump, the dump concurrently.
func (a *app) load(withDump bool) (*workspace, error) {
	cfg := a.cfg
	if cfg.Schema == "" {
		return nil, errors.New("no schema given, set --schema or RAWEXPLORER_SCHEMA")
	}
	if withDump && cfg.Dump == "" {
		return nil, errors.New("no dump given, set --dump or RAWEXPLORER_DUMP")
	}

	w := &workspace{mode: cfg.DisplayMode()}
	var g errgroup.Group

	g.Go(func() error {
		doc, err := schema.LoadFile(cfg.Schema)
		if err != nil {
			return errors.Wrapf(err, "failed to load schema %s", cfg.Schema)
		}
		var opts []schema.Option
		if cfg.DocBase != "" {
			opts = append(opts, schema.WithDocBase(cfg.DocBase))
		}
		w.index = schema.NewIndex(doc, opts...)
		return nil
	})

	if withDump {
		g.Go(func() error {
			root, err := loadDump(cfg.Dump, cfg.JSONDriver(), cfg.BuildOpt(logIssue))
			if err != nil {
				return errors.Wrapf(err, "failed to load dump %s", cfg.Dump)
			}
			w.root = root
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return w, nil
}

func loadDump(path string, driver rawexplorer.JSONDriver, opt rawexplorer.BuildOpt) (dedup.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return dedup.Value{}, err
	}
	defer f.Close()

	root, err := dedup.Build(driver.NewReader(f), opt)
	if err != nil {
		return dedup.Value{}, err
	}
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		st := dedup.Collect(root)
		logrus.WithFields(logrus.Fields{
			"driver":   driver.Name(),
			"nodes":    st.Nodes,
			"strings":  st.Strings,
			"distinct": st.Distinct,
			"depth":    st.MaxDepth,
		}).Debugf("loaded dump %s", path)
	}
	return root, nil
}

// loadAt builds only the value at pointer from the dump.
func (a *app) loadAt(pointer string) (dedup.Value, error) {
	cfg := a.cfg
	if cfg.Dump == "" {
		return dedup.Value{}, errors.New("no dump given, set --dump or RAWEXPLORER_DUMP")
	}
	p, err := explorer.ParsePointer(pointer)
	if err != nil {
		return dedup.Value{}, err
	}
	keys := make([]string, len(p))
	for i, st := range p {
		keys[i] = st.Key
	}

	f, err := os.Open(cfg.Dump)
	if err != nil {
		return dedup.Value{}, errors.Wrapf(err, "failed to open dump %s", cfg.Dump)
	}
	defer f.Close()
	return dedup.BuildAt(cfg.JSONDriver().NewReader(f), keys, cfg.BuildOpt(logIssue))
}

func logIssue(iss rawexplorer.Issue) {
	logrus.WithField("path", iss.Path).Warnf("%s: %s", iss.Code, iss.Message)
}
