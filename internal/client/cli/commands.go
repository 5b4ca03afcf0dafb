package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/lyra/internal/api/dto"
	"github.com/spec-kit/lyra/internal/auth"
	"github.com/spec-kit/lyra/internal/client/assess"
	"github.com/spec-kit/lyra/internal/client/storage"
)

func (c *Cli) runRegister(ctx context.Context) error {
	name, err := c.readLine("Name: ")
	if err != nil {
		return err
	}
	email, err := c.readLine("Email: ")
	if err != nil {
		return err
	}
	password, err := c.readPassword("Password: ")
	if err != nil {
		return err
	}

	resp, err := c.apiClient.Register(ctx, dto.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return err
	}

	if err := c.saveSession(ctx, resp); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Registered and logged in.")
	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	email, err := c.readLine("Email: ")
	if err != nil {
		return err
	}
	password, err := c.readPassword("Password: ")
	if err != nil {
		return err
	}

	resp, err := c.apiClient.Login(ctx, dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}

	if err := c.saveSession(ctx, resp); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Logged in.")
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.sessions.DeleteSession(ctx); err != nil {
		if err == storage.ErrSessionNotFound {
			fmt.Fprintln(c.out, "Not logged in.")
			return nil
		}
		return err
	}
	fmt.Fprintln(c.out, "Logged out.")
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	ok, err := c.sessions.IsAuthenticated(ctx)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(c.out, "Not logged in.")
		return nil
	}

	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Logged in as %s (expires %s)\n", session.Email, session.ExpiresAt.Format(time.RFC3339))
	return nil
}

func (c *Cli) runWhoami(ctx context.Context) error {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if err == storage.ErrSessionNotFound {
			return fmt.Errorf("not authenticated; run 'lyra login' first")
		}
		return err
	}

	user, err := c.apiClient.Me(ctx, session.Token)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "ID:    %s\nName:  %s\nEmail: %s\nRole:  %s\n", user.ID, user.Name, user.Email, user.Role)
	return nil
}

func (c *Cli) runAssess(ctx context.Context, args []string) error {
	features, err := c.collectFeatures(args)
	if err != nil {
		return err
	}

	result, err := assess.Evaluate(ctx, c.classifier, features)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Your Mental Health Status: %s\n", result.Category)
	return nil
}

// collectFeatures accepts the five scores as arguments or prompts for them
// one by one in feature order.
func (c *Cli) collectFeatures(args []string) ([]float32, error) {
	if len(args) == len(assess.FeatureNames) {
		features := make([]float32, len(args))
		for i, arg := range args {
			val, err := strconv.ParseFloat(arg, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid number for %s", assess.FeatureNames[i])
			}
			features[i] = float32(val)
		}
		return features, nil
	}
	if len(args) > 0 {
		return nil, fmt.Errorf("expected %d scores, got %d", len(assess.FeatureNames), len(args))
	}

	features := make([]float32, 0, len(assess.FeatureNames))
	for _, name := range assess.FeatureNames {
		val, err := c.readScore(name)
		if err != nil {
			return nil, err
		}
		features = append(features, val)
	}
	return features, nil
}

// saveSession decodes the claim snapshot out of the token (without
// verifying; the server already signed it) and persists it locally.
func (c *Cli) saveSession(ctx context.Context, resp *dto.TokenResponse) error {
	session := &storage.Session{Token: resp.Token, ExpiresAt: resp.ExpiresAt}

	var claims auth.Claims
	if _, _, err := jwt.NewParser().ParseUnverified(resp.Token, &claims); err == nil {
		session.UserID = claims.UserID
		session.Name = claims.Name
		session.Email = claims.Email
		session.Role = claims.Role
	}

	return c.sessions.SaveSession(ctx, session)
}
