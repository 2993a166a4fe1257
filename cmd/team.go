// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Inspect and manage a team through a running instance",
}

type teamPayload struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	PlanName           *string `json:"plan_name"`
	SubscriptionStatus *string `json:"subscription_status"`
	InviteCode         *string `json:"invite_code"`
	Role               string  `json:"role"`
	Members            []struct {
		ProfileID string `json:"profile_id"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		Role      string `json:"role"`
		JoinedAt  string `json:"joined_at"`
	} `json:"members"`
}

var getTeamCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the team of the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		team := new(teamPayload)
		if err := client.do(context.Background(), http.MethodGet, "/api/v0/team", nil, team); err != nil {
			return fmt.Errorf("failed to load team: %w", err)
		}

		plan := "-"
		if team.PlanName != nil {
			plan = *team.PlanName
		}
		fmt.Printf("Team %d: %s (plan: %s)\n\n", team.ID, team.Name, plan)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "PROFILE_ID\tNAME\tEMAIL\tROLE\tJOINED_AT")
		for _, m := range team.Members {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", m.ProfileID, m.Name, m.Email, m.Role, m.JoinedAt)
		}
		w.Flush()
		return nil
	},
}

var inviteMemberCmd = &cobra.Command{
	Use:   "invite [email] [role]",
	Short: "Invite a member to the authenticated user's team",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		body := map[string]string{"email": args[0], "role": args[1]}
		if err := client.do(context.Background(), http.MethodPost, "/api/v0/team/invitations", body, nil); err != nil {
			return fmt.Errorf("failed to invite member: %w", err)
		}

		fmt.Printf("Member invited: %s (role: %s)\n", args[0], args[1])
		return nil
	},
}

var listInvitationsCmd = &cobra.Command{
	Use:   "invitations",
	Short: "List the team's invitations",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		var invitations []struct {
			ID        int64  `json:"id"`
			Email     string `json:"email"`
			Role      string `json:"role"`
			InvitedAt string `json:"invited_at"`
			Status    string `json:"status"`
		}
		if err := client.do(context.Background(), http.MethodGet, "/api/v0/team/invitations", nil, &invitations); err != nil {
			return fmt.Errorf("failed to list invitations: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tROLE\tSTATUS\tINVITED_AT")
		for _, inv := range invitations {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", inv.ID, inv.Email, inv.Role, inv.Status, inv.InvitedAt)
		}
		w.Flush()
		return nil
	},
}

var removeMemberCmd = &cobra.Command{
	Use:   "remove [profile-id]",
	Short: "Remove a member from the authenticated user's team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		path := "/api/v0/team/members/" + args[0]
		if err := client.do(context.Background(), http.MethodDelete, path, nil, nil); err != nil {
			return fmt.Errorf("failed to remove member: %w", err)
		}

		fmt.Printf("Member removed: %s\n", args[0])
		return nil
	},
}

var rotateCodeCmd = &cobra.Command{
	Use:   "rotate-code",
	Short: "Rotate the team invite code",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		var resp struct {
			Fields map[string]string `json:"fields"`
		}
		if err := client.do(context.Background(), http.MethodPost, "/api/v0/team/invite-code", nil, &resp); err != nil {
			return fmt.Errorf("failed to rotate invite code: %w", err)
		}

		fmt.Printf("New invite code: %s\n", resp.Fields["invite_code"])
		return nil
	},
}

var deleteTeamCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a team (requires an admin token)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		path := "/api/v0/admin/teams/" + args[0]
		if err := client.do(context.Background(), http.MethodDelete, path, nil, nil); err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}

		fmt.Printf("Team deleted: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(teamCmd)
	teamCmd.AddCommand(getTeamCmd)
	teamCmd.AddCommand(inviteMemberCmd)
	teamCmd.AddCommand(listInvitationsCmd)
	teamCmd.AddCommand(removeMemberCmd)
	teamCmd.AddCommand(rotateCodeCmd)
	teamCmd.AddCommand(deleteTeamCmd)

	teamCmd.PersistentFlags().StringVar(&httpEndpoint, "endpoint", "localhost:8080", "HTTP endpoint of a running instance")
	teamCmd.PersistentFlags().StringVar(&sessionToken, "session-token", "", "Kratos session token to act as a user")
	teamCmd.PersistentFlags().StringVar(&adminToken, "admin-token", "", "JWT bearer token for admin endpoints")
}
