package config

import (
	"errors"
	"os"

	supa "github.com/supabase-community/supabase-go"
)

// SupabaseClient is the shared anon-key client, used for requests that carry
// no user identity. Per-user requests go through NewAuthenticatedClient so
// row-level security applies; admin queries go through GetServiceClient.
var SupabaseClient *supa.Client

// InitSupabase initializes the shared Supabase client from the environment.
func InitSupabase() error {
	url := os.Getenv("SUPABASE_URL")
	key := os.Getenv("SUPABASE_ANON_KEY")
	if url == "" || key == "" {
		return errors.New("SUPABASE_URL and SUPABASE_ANON_KEY must be set")
	}

	client, err := supa.NewClient(url, key, nil)
	if err != nil {
		return err
	}
	SupabaseClient = client
	return nil
}

// NewAuthenticatedClient returns a client acting on behalf of the user whose
// access token is given, so Supabase RLS policies apply to every query.
func NewAuthenticatedClient(accessToken string) (*supa.Client, error) {
	url := os.Getenv("SUPABASE_URL")
	key := os.Getenv("SUPABASE_ANON_KEY")
	return supa.NewClient(url, key, &supa.ClientOptions{
		Headers: map[string]string{"Authorization": "Bearer " + accessToken},
	})
}

// GetServiceClient returns a client using the service-role key, bypassing
// RLS. Callers must verify the requester is an admin first.
func GetServiceClient() (*supa.Client, error) {
	url := os.Getenv("SUPABASE_URL")
	key := os.Getenv("SUPABASE_SERVICE_KEY")
	if key == "" {
		return nil, errors.New("SUPABASE_SERVICE_KEY is not set")
	}
	return supa.NewClient(url, key, nil)
}
