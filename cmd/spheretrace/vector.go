package main

import (
	"github.com/spf13/cobra"

	geomath "github.com/oxygene76/spheretrace/pkg/geometry/math"
)

func vectorCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vector",
		Short: "Vector arithmetic",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "length [x,y,z]",
			Short: "Print the length of a vector",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				vs, err := parseVectors(args)
				if err != nil {
					return err
				}
				return a.client.Print(a.client.Length(vs[0]))
			},
		},
		&cobra.Command{
			Use:   "normalize [x,y,z]",
			Short: "Print the unit vector in the same direction",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				vs, err := parseVectors(args)
				if err != nil {
					return err
				}
				res, err := a.client.Normalize(vs[0])
				if err != nil {
					return err
				}
				return a.client.Print(res)
			},
		},
		&cobra.Command{
			Use:   "dot [a] [b]",
			Short: "Print the dot product of two vectors",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				vs, err := parseVectors(args)
				if err != nil {
					return err
				}
				return a.client.Print(a.client.Dot(vs[0], vs[1]))
			},
		},
		&cobra.Command{
			Use:   "from-to [from] [to]",
			Short: "Print the vector from one point to another",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				vs, err := parseVectors(args)
				if err != nil {
					return err
				}
				return a.client.Print(a.client.FromTo(vs[0], vs[1]))
			},
		},
		projectCmd(a),
	)

	return cmd
}

func projectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project [vector] [onto]",
		Short: "Project a vector onto the direction of another",
		Long: `Project a vector onto the direction of another.

Without --standard the unit vector of [onto] is multiplied component-wise by
[vector]. --standard prints the textbook projection (v·ô)ô.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			standard, _ := cmd.Flags().GetBool("standard")

			vs, err := parseVectors(args)
			if err != nil {
				return err
			}
			res, err := a.client.Project(vs[0], vs[1], standard)
			if err != nil {
				return err
			}
			return a.client.Print(res)
		},
	}

	cmd.Flags().Bool("standard", false, "use the textbook vector projection")

	return cmd
}

func parseVectors(args []string) ([]*geomath.Vector3, error) {
	vs := make([]*geomath.Vector3, 0, len(args))
	for _, arg := range args {
		v, err := geomath.ParseVector3(arg)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}
