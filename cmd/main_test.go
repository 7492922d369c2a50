package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-tweet-studio/internal/facades"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !contains(output, "v1.0.0") ||
		!contains(output, "abcd1234") ||
		!contains(output, "2025-09-26") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort, logLevel,
		databasePath, imageDir, trainingDataPath,
		tweetAPIURL, tweetAPIKey, imageAPIURL, imageAPIKey,
		jwtSecret, jwtExp, err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if appHost != "localhost" || appPort != "8080" || logLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", appHost, appPort, logLevel)
	}

	// Storage
	if databasePath != "database.db" || imageDir != "generated_images" ||
		trainingDataPath != "training_data/generated_data.json" {
		t.Errorf("unexpected storage config")
	}

	// Generation APIs
	if tweetAPIURL != facades.DefaultTweetAPIURL || tweetAPIKey != "" ||
		imageAPIURL != facades.DefaultImageAPIURL || imageAPIKey != "" {
		t.Errorf("unexpected generation API config")
	}

	// JWT
	if jwtSecret != "my_super_secret_key" || jwtExp != 86400 {
		t.Errorf("unexpected jwt config")
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("DATABASE_PATH", "/tmp/app.db")
	os.Setenv("IMAGE_DIR", "/tmp/images")
	os.Setenv("TRAINING_DATA_PATH", "/tmp/training.json")

	os.Setenv("TWEET_API_URL", "https://tweets.example.com/generate")
	os.Setenv("TWEET_API_KEY", "tweet-key")
	os.Setenv("IMAGE_API_URL", "https://images.example.com/generate")
	os.Setenv("IMAGE_API_KEY", "image-key")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_EXP_SECOND", "300")

	appHost, appPort, logLevel,
		databasePath, imageDir, trainingDataPath,
		tweetAPIURL, tweetAPIKey, imageAPIURL, imageAPIKey,
		jwtSecret, jwtExp, err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if appHost != "127.0.0.1" || appPort != "9090" || logLevel != "debug" {
		t.Errorf("unexpected app config")
	}
	if databasePath != "/tmp/app.db" || imageDir != "/tmp/images" || trainingDataPath != "/tmp/training.json" {
		t.Errorf("unexpected storage config")
	}
	if tweetAPIURL != "https://tweets.example.com/generate" || tweetAPIKey != "tweet-key" ||
		imageAPIURL != "https://images.example.com/generate" || imageAPIKey != "image-key" {
		t.Errorf("unexpected generation API config")
	}
	if jwtSecret != "supersecret" || jwtExp != 300 {
		t.Errorf("unexpected jwt config")
	}
}

func TestParseConfig_InvalidJWTExp(t *testing.T) {
	resetEnv()
	os.Setenv("JWT_EXP_SECOND", "not-a-number")

	_, _, _, _, _, _, _, _, _, _, _, _, err := parseConfig("nonexistent.env")
	if err == nil {
		t.Fatal("expected error for invalid JWT_EXP_SECOND")
	}
}

// ------------------ Full integration test ------------------
func TestRun_StartsAndStops(t *testing.T) {
	resetEnv()

	dir := t.TempDir()
	databasePath := filepath.Join(dir, "app.db")
	imageDir := filepath.Join(dir, "images")
	trainingDataPath := filepath.Join(dir, "training", "generated_data.json")

	testCtx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx,
			"127.0.0.1", "8086", "debug",
			databasePath, imageDir, trainingDataPath,
			facades.DefaultTweetAPIURL, "", facades.DefaultImageAPIURL, "",
			"testsecret", 60,
		)
	}()

	// Give the server a moment to start, then trigger shutdown.
	time.Sleep(2 * time.Second)
	cancel()

	select {
	case <-time.After(15 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to succeed, got error: %v", err)
		}
	}

	// Migration must have created the database file.
	if _, err := os.Stat(databasePath); err != nil {
		t.Errorf("expected database file to exist: %v", err)
	}
}
