package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ischool/courseinfo-backend/internal/model"
	"github.com/ischool/courseinfo-backend/internal/registry"
	"github.com/spf13/cobra"
)

var entitiesCmd = &cobra.Command{
	Use:   "entities",
	Short: "List entity kinds and record counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KIND\tRECORDS\tFIELDS")
		for _, e := range cur.reg.All() {
			n, err := e.Admin.Count(cmd.Context())
			if err != nil {
				return err
			}
			names := make([]string, len(e.Schema.Fields))
			for i, f := range e.Schema.Fields {
				names[i] = f.Name
			}
			fmt.Fprintf(w, "%s\t%d\t%s\n", e.Kind, n, strings.Join(names, ", "))
		}
		return w.Flush()
	},
}

var listCmd = &cobra.Command{
	Use:   "list <entity>",
	Short: "List records in default order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := lookup(args[0])
		if err != nil {
			return err
		}
		recs, err := e.Admin.List(cmd.Context())
		if err != nil {
			return err
		}
		return printRecords(cmd.OutOrStdout(), recs)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <entity> <id>",
	Short: "Show one record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, id, err := lookupWithID(args[0], args[1])
		if err != nil {
			return err
		}
		rec, err := e.Admin.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printRecords(cmd.OutOrStdout(), []model.Record{rec})
	},
}

var createCmd = &cobra.Command{
	Use:   "create <entity> field=value...",
	Short: "Create a record",
	Long: `Create validates and stores a new record. Fields are given as
field=value pairs; run "entities" to see each entity's fields.

Example:
  courseinfo-admin create course course_number=IS507 course_name="Data, Statistical Models and Information"
  courseinfo-admin create section section_name=01 semester_id=1 course_id=3 instructor_id=1`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := lookup(args[0])
		if err != nil {
			return err
		}
		raw, err := payload(e.Schema, args[1:])
		if err != nil {
			return err
		}
		rec, err := e.Admin.Create(cmd.Context(), raw)
		if err != nil {
			return err
		}
		return printRecords(cmd.OutOrStdout(), []model.Record{rec})
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <entity> <id> field=value...",
	Short: "Replace a record's fields",
	Long:  `Update replaces every field of a record, so all fields must be given.`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, id, err := lookupWithID(args[0], args[1])
		if err != nil {
			return err
		}
		raw, err := payload(e.Schema, args[2:])
		if err != nil {
			return err
		}
		rec, err := e.Admin.Update(cmd.Context(), id, raw)
		if err != nil {
			return err
		}
		return printRecords(cmd.OutOrStdout(), []model.Record{rec})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <entity> <id>",
	Short: "Delete a record that nothing references",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, id, err := lookupWithID(args[0], args[1])
		if err != nil {
			return err
		}
		if err := e.Admin.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s %d\n", e.Kind, id)
		return nil
	},
}

func lookup(name string) (registry.Entity, error) {
	kind, err := model.ParseKind(name)
	if err != nil {
		return registry.Entity{}, err
	}
	e, ok := cur.reg.Lookup(kind)
	if !ok {
		return registry.Entity{}, fmt.Errorf("entity %q is not registered", name)
	}
	return e, nil
}

func lookupWithID(name, rawID string) (registry.Entity, int, error) {
	e, err := lookup(name)
	if err != nil {
		return e, 0, err
	}
	id, err := strconv.Atoi(rawID)
	if err != nil || id < 1 {
		return e, 0, fmt.Errorf("invalid id %q", rawID)
	}
	return e, id, nil
}

// payload turns field=value pairs into the JSON body the admin store expects.
// Integer and reference fields are sent as numbers.
func payload(schema registry.Schema, pairs []string) (json.RawMessage, error) {
	types := make(map[string]registry.FieldType, len(schema.Fields))
	for _, f := range schema.Fields {
		types[f.Name] = f.Type
	}

	body := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid field %q (expected field=value)", pair)
		}
		ft, known := types[key]
		if !known {
			return nil, fmt.Errorf("unknown field %q", key)
		}
		if ft == registry.FieldText {
			body[key] = value
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %q is not a number", key, value)
		}
		body[key] = n
	}
	return json.Marshal(body)
}

func printRecords(out io.Writer, recs []model.Record) error {
	if jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tURL")
	for _, r := range recs {
		fmt.Fprintf(w, "%d\t%s\t%s\n", r.PK(), r.String(), r.AbsoluteURL())
	}
	return w.Flush()
}
