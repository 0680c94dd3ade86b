package main

import (
	"errors"
	"strings"

	"ambalaje-storefront/internal/category"
	"ambalaje-storefront/internal/menu"
	"ambalaje-storefront/internal/product"
	"ambalaje-storefront/internal/transport"

	"github.com/spf13/cobra"
)

var errNotFound = errors.New("no menu entry matches path")

type rootFlags struct {
	Output string
}

func newRootCommand(build func() (Dependencies, error)) *cobra.Command {
	var (
		flags rootFlags
		deps  Dependencies
	)

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Inspect the storefront catalog.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := parseOutputFormat(flags.Output); err != nil {
				return err
			}
			var err error
			deps, err = build()
			return err
		},
	}
	root.PersistentFlags().StringVarP(&flags.Output, "output", "o", formatYAML, "output format: yaml or json")

	get := func() Dependencies { return deps }
	out := func(cmd *cobra.Command, v any) error {
		format, _ := parseOutputFormat(flags.Output)
		return emit(cmd.OutOrStdout(), format, v)
	}

	root.AddCommand(
		newMenuCommand(get, out),
		newProduseCommand(get, out),
		newResolveCommand(get, out),
		newPageCommand(get, out),
		newSearchCommand(get, out),
		newCollectionsCommand(get, out),
	)
	return root
}

type (
	depsFunc   func() Dependencies
	outputFunc func(cmd *cobra.Command, v any) error
)

func newMenuCommand(deps depsFunc, out outputFunc) *cobra.Command {
	var footer bool
	cmd := &cobra.Command{
		Use:   "menu [handle]",
		Short: "Print a menu tree. Defaults to the navbar menu, or the footer menu with --footer.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := deps()
			handle := d.Config.NavbarMenuHandle
			if footer {
				handle = d.Config.FooterMenuHandle
			}
			if len(args) == 1 {
				handle = args[0]
			}
			nodes, err := d.Menus.GetMenu(cmd.Context(), handle)
			if err != nil {
				return err
			}
			return out(cmd, nodes)
		},
	}
	cmd.Flags().BoolVar(&footer, "footer", false, "print the footer menu")
	return cmd
}

func newProduseCommand(deps depsFunc, out outputFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "produse",
		Short: "Print the catalog menu with collection images.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := deps().Menus.GetProduseMenu(cmd.Context())
			if err != nil {
				return err
			}
			return out(cmd, nodes)
		},
	}
}

func newResolveCommand(deps depsFunc, out outputFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>",
		Short: "Resolve a catalog path such as pahare/carton against the catalog menu.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := deps().Menus.GetProduseMenu(cmd.Context())
			if err != nil {
				return err
			}
			node, ok := menu.Resolve(tree, transport.Segments(trimCatalogRoot(args[0])))
			if !ok {
				return errNotFound
			}
			return out(cmd, node)
		},
	}
}

func newPageCommand(deps depsFunc, out outputFunc) *cobra.Command {
	var sort string
	cmd := &cobra.Command{
		Use:   "page [path]",
		Short: "Compose the catalog page for a path.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p string
			if len(args) == 1 {
				p = trimCatalogRoot(args[0])
			}
			page, err := deps().Storefront.Catalog(cmd.Context(), transport.Params{
				Segments: transport.Segments(p),
				Sort:     product.FindSort(sort),
			})
			if err != nil {
				return err
			}
			return out(cmd, page)
		},
	}
	cmd.Flags().StringVar(&sort, "sort", "", "sort slug, e.g. price-asc")
	return cmd
}

func newSearchCommand(deps depsFunc, out outputFunc) *cobra.Command {
	var sort string
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search product titles, ignoring case and diacritics.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := deps().Storefront.Search(cmd.Context(), strings.Join(args, " "), product.FindSort(sort))
			if err != nil {
				return err
			}
			return out(cmd, res)
		},
	}
	cmd.Flags().StringVar(&sort, "sort", "", "sort slug, e.g. latest-desc")
	return cmd
}

func newCollectionsCommand(deps depsFunc, out outputFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "List visible collections, All first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			collections, err := deps().Collections.GetCollections(cmd.Context())
			if err != nil {
				return err
			}
			return out(cmd, collections)
		},
	}
}

// trimCatalogRoot accepts both "/produse/pahare" and "pahare".
func trimCatalogRoot(p string) string {
	p = "/" + strings.TrimPrefix(p, "/")
	if p == category.CatalogRoot {
		return ""
	}
	return strings.TrimPrefix(strings.TrimPrefix(p, category.CatalogRoot+"/"), "/")
}
