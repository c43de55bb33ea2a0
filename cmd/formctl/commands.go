package main

import (
	"fmt"

	"github.com/spf13/cobra"

	submissionapp "github.com/interiors/backend/internal/application/submission"
	"github.com/interiors/backend/internal/domain/shared"
	"github.com/interiors/backend/internal/domain/submission"
)

func (c *cli) classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify FILE",
		Short: "Resolve the kind of a submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readFormData(cmd, args[0])
			if err != nil {
				return err
			}
			resp, err := c.service.Classify(c.context(cmd), submissionapp.ClassifyRequest{FormData: data})
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), c.output, resp)
		},
	}
}

func (c *cli) renderCmd() *cobra.Command {
	var (
		canEdit bool
		kind    string
	)
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Print the display sections of a submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind != "" && !submission.Kind(kind).IsValid() {
				return fmt.Errorf("unknown kind %q", kind)
			}
			data, err := readFormData(cmd, args[0])
			if err != nil {
				return err
			}
			resp, err := c.service.Render(c.context(cmd), submissionapp.RenderRequest{
				FormData: data,
				CanEdit:  canEdit,
				Kind:     kind,
			})
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), c.output, resp)
		},
	}
	cmd.Flags().BoolVar(&canEdit, "can-edit", false, "include section actions available to editors")
	cmd.Flags().StringVar(&kind, "kind", "", "render as this kind instead of classifying")
	return cmd
}

func (c *cli) materialsCmd() *cobra.Command {
	var section string
	cmd := &cobra.Command{
		Use:   "materials FILE",
		Short: "Extract material line items for a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readFormData(cmd, args[0])
			if err != nil {
				return err
			}
			resp, err := c.service.ExtractMaterials(c.context(cmd), submissionapp.ExtractMaterialsRequest{
				FormData:     data,
				SectionTitle: section,
			})
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), c.output, resp)
		},
	}
	cmd.Flags().StringVarP(&section, "section", "s", "", "section title, e.g. \"Hardware Specifications\"")
	_ = cmd.MarkFlagRequired("section")
	return cmd
}

func (c *cli) orderCmd() *cobra.Command {
	var req submissionapp.CreateMaterialOrderRequest
	cmd := &cobra.Command{
		Use:   "order FILE",
		Short: "Draft a material order for a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readFormData(cmd, args[0])
			if err != nil {
				return err
			}
			req.FormData = data
			resp, err := c.service.CreateMaterialOrder(c.context(cmd), req)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), c.output, resp)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&req.SectionTitle, "section", "s", "", "section title")
	flags.StringArrayVar(&req.Items, "item", nil, "line item to order, repeatable (default: extract from the section)")
	flags.IntSliceVar(&req.RemoveItems, "remove", nil, "zero-based position of an item to leave out, repeatable")
	flags.StringVar(&req.SupplierName, "supplier", "", "supplier name")
	flags.StringVar(&req.EstimatedCost, "cost", "", "estimated cost")
	flags.StringVar(&req.OrderDate, "order-date", "", "order date, YYYY-MM-DD (default: today)")
	flags.StringVar(&req.ExpectedDeliveryDate, "delivery-date", "", "expected delivery date, YYYY-MM-DD")
	flags.StringVar(&req.Notes, "notes", "", "free text notes")
	_ = cmd.MarkFlagRequired("section")
	return cmd
}

func (c *cli) markNACmd() *cobra.Command {
	var formPath string
	cmd := &cobra.Command{
		Use:   "mark-na TAG",
		Short: "Print the Mark N/A patch for a section tag",
		Long: `Print the fields a Mark N/A action writes for a section tag.

With --form the patch is also applied to the given submission and the merged
form data is printed alongside it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := submissionapp.MarkNotApplicableRequest{SectionTag: args[0]}
			if formPath != "" {
				data, err := readFormData(cmd, formPath)
				if err != nil {
					return err
				}
				req.FormData = data
			}
			resp, err := c.service.MarkNotApplicable(c.context(cmd), req)
			if err != nil {
				return err
			}
			if !resp.Known {
				return fmt.Errorf("%w: %q", shared.ErrUnknownResetTag, args[0])
			}
			return writeResult(cmd.OutOrStdout(), c.output, resp)
		},
	}
	cmd.Flags().StringVarP(&formPath, "form", "f", "", "submission to apply the patch to")
	return cmd
}
