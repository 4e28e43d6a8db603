package main

import (
	"github.com/spf13/cobra"

	geomath "github.com/oxygene76/spheretrace/pkg/geometry/math"
	"github.com/oxygene76/spheretrace/pkg/geometry/shapes"
)

func raycastCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "raycast",
		Short: "Intersect a ray with a sphere",
		Long: `Cast a ray against a sphere and print the near intersection.

The sphere defaults to the scene sphere from the config file. By default a hit
is only reported when the whole intersection lies in front of the ray origin,
so rays starting inside the sphere miss. --nearest reports the exit point
for such rays instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			originFlag, _ := cmd.Flags().GetString("origin")
			directionFlag, _ := cmd.Flags().GetString("direction")
			nearest, _ := cmd.Flags().GetBool("nearest")

			origin, err := geomath.ParseVector3(originFlag)
			if err != nil {
				return err
			}
			direction, err := geomath.ParseVector3(directionFlag)
			if err != nil {
				return err
			}

			var sphere *shapes.Sphere
			if cmd.Flags().Changed("center") || cmd.Flags().Changed("radius") {
				s := a.client.Config().DefaultSphere()
				if cmd.Flags().Changed("center") {
					centerFlag, _ := cmd.Flags().GetString("center")
					center, err := geomath.ParseVector3(centerFlag)
					if err != nil {
						return err
					}
					s.Center = *center
				}
				if cmd.Flags().Changed("radius") {
					s.Radius, _ = cmd.Flags().GetFloat64("radius")
				}
				sphere = &s
			}

			result, err := a.client.Raycast(sphere, shapes.NewRay(origin, direction), nearest)
			if err != nil {
				return err
			}
			return a.client.Print(result)
		},
	}

	cmd.Flags().String("origin", "", "ray origin x,y,z")
	cmd.Flags().String("direction", "", "ray direction x,y,z")
	cmd.Flags().String("center", "", "sphere center x,y,z (default from config)")
	cmd.Flags().Float64("radius", 1, "sphere radius (default from config)")
	cmd.Flags().Bool("nearest", false, "accept the nearest positive root, so rays starting inside hit")
	cmd.MarkFlagRequired("origin")
	cmd.MarkFlagRequired("direction")

	return cmd
}
