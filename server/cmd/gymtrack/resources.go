package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gymtrack/gymtrack-web/client"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "users", Short: "User operations"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetUsers(ctx)
			})
		},
	})
	return cmd
}

func newGymsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "gyms", Short: "Gym operations"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List gyms",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetGyms(ctx)
			})
		},
	})

	var id int64
	get := &cobra.Command{
		Use:   "get",
		Short: "Get one gym",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetGym(ctx, id)
			})
		},
	}
	get.Flags().Int64Var(&id, "id", 0, "Gym ID (required)")
	_ = get.MarkFlagRequired("id")
	cmd.AddCommand(get)

	var name string
	var userID int64
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a gym",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.CreateGym(ctx, client.CreateGymRequest{Name: name, UserID: userID})
			})
		},
	}
	create.Flags().StringVar(&name, "name", "", "Gym name (required)")
	create.Flags().Int64Var(&userID, "user-id", 0, "Owning user ID (required)")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("user-id")
	cmd.AddCommand(create)

	return cmd
}

func newEquipmentCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "equipment", Short: "Equipment operations"}

	var gymID int64
	list := &cobra.Command{
		Use:   "list",
		Short: "List equipment, optionally for one gym",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				if cmd.Flags().Changed("gym") {
					return c.GetGymEquipment(ctx, gymID)
				}
				return c.GetEquipment(ctx)
			})
		},
	}
	list.Flags().Int64Var(&gymID, "gym", 0, "Only equipment of this gym")
	cmd.AddCommand(list)

	return cmd
}

func newEquipmentTypesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "equipment-types", Short: "Equipment type operations"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List equipment types",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetEquipmentTypes(ctx)
			})
		},
	})

	var name string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an equipment type",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.CreateEquipmentType(ctx, client.CreateEquipmentTypeRequest{Name: name})
			})
		},
	}
	create.Flags().StringVar(&name, "name", "", "Equipment type name (required)")
	_ = create.MarkFlagRequired("name")
	cmd.AddCommand(create)

	return cmd
}

func newExercisesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "exercises", Short: "Exercise operations"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List exercises",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetExercises(ctx)
			})
		},
	})

	var name string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an exercise",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.CreateExercise(ctx, client.CreateExerciseRequest{Name: name})
			})
		},
	}
	create.Flags().StringVar(&name, "name", "", "Exercise name (required)")
	_ = create.MarkFlagRequired("name")
	cmd.AddCommand(create)

	return cmd
}

func newWorkoutsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "workouts", Short: "Workout operations"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List workouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetWorkouts(ctx)
			})
		},
	})

	var id int64
	get := &cobra.Command{
		Use:   "get",
		Short: "Get one workout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetWorkout(ctx, id)
			})
		},
	}
	get.Flags().Int64Var(&id, "id", 0, "Workout ID (required)")
	_ = get.MarkFlagRequired("id")
	cmd.AddCommand(get)

	var userID, gymID int64
	var exercises string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a workout",
		RunE: func(cmd *cobra.Command, args []string) error {
			var list []any
			if exercises != "" {
				if err := json.Unmarshal([]byte(exercises), &list); err != nil {
					return fmt.Errorf("--exercises must be a JSON array: %w", err)
				}
			}
			return withClient(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.CreateWorkout(ctx, client.CreateWorkoutRequest{UserID: userID, GymID: gymID, Exercises: list})
			})
		},
	}
	create.Flags().Int64Var(&userID, "user-id", 0, "User ID (required)")
	create.Flags().Int64Var(&gymID, "gym-id", 0, "Gym ID (required)")
	create.Flags().StringVar(&exercises, "exercises", "", `Exercises as a JSON array, e.g. '[{"exercise_id":1,"sets":3}]'`)
	_ = create.MarkFlagRequired("user-id")
	_ = create.MarkFlagRequired("gym-id")
	cmd.AddCommand(create)

	return cmd
}
