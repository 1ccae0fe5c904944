package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/orgsite/internal/config"
	ferrors "git.home.luguber.info/inful/orgsite/internal/foundation/errors"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("orgsite"),
		kong.Vars{"version": "test"},
		kong.Exit(func(code int) { t.Fatalf("unexpected exit %d", code) }),
	)
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	err = kctx.Run(&Global{Stdout: out}, &cli)
	return out.String(), err
}

func writeConfig(t *testing.T) (cfgPath, outDir string) {
	t.Helper()
	src, err := filepath.Abs(filepath.Join("..", "..", "..", "internal", "articles", "testdata", "blog"))
	require.NoError(t, err)
	dir := t.TempDir()
	outDir = filepath.Join(dir, "public")
	cfgPath = filepath.Join(dir, "orgsite.yaml")
	body := "source:\n  directory: " + src + "\n" +
		"output:\n  directory: " + outDir + "\n  clean: true\n" +
		"site:\n  domain_name: blog.test\n  full_name: Test Author\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o600))
	return cfgPath, outDir
}

func exitCode(err error) int {
	return ferrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err)
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orgsite.yaml")

	out, err := runCLI(t, "-c", path, "init")
	require.NoError(t, err)
	require.Contains(t, out, path)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "blog", cfg.Source.Directory)

	_, err = runCLI(t, "-c", path, "init")
	require.Error(t, err)
	require.Equal(t, 2, exitCode(err))

	_, err = runCLI(t, "-c", path, "init", "--force")
	require.NoError(t, err)
}

func TestBuild(t *testing.T) {
	cfgPath, outDir := writeConfig(t)
	dir := filepath.Dir(cfgPath)
	report := filepath.Join(dir, "report.json")
	textfile := filepath.Join(dir, "orgsite.prom")

	out, err := runCLI(t, "-c", cfgPath, "build", "--workers", "2", "--report", report, "--metrics-textfile", textfile)
	require.NoError(t, err)
	require.Contains(t, out, "Built 2 articles (1 skipped)")

	require.FileExists(t, filepath.Join(outDir, "blog", "hello", "index.html"))
	require.FileExists(t, filepath.Join(outDir, "feed", "index.xml"))
	require.FileExists(t, report)

	prom, err := os.ReadFile(textfile)
	require.NoError(t, err)
	require.Contains(t, string(prom), "orgsite_build_outcomes_total")
	require.Contains(t, string(prom), `orgsite_parse_results_total{result="ok"} 2`)
}

func TestBuild_OutputOverride(t *testing.T) {
	cfgPath, outDir := writeConfig(t)
	other := filepath.Join(t.TempDir(), "site")

	_, err := runCLI(t, "-c", cfgPath, "build", "-o", other)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(other, "index.html"))
	require.NoDirExists(t, outDir)
}

func TestBuild_MissingConfig(t *testing.T) {
	_, err := runCLI(t, "-c", filepath.Join(t.TempDir(), "missing.yaml"), "build")
	require.Error(t, err)
	require.Equal(t, 3, exitCode(err))
}

func TestBuild_MissingSource(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	_, err := runCLI(t, "-c", cfgPath, "build", "--source", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	require.Equal(t, 7, exitCode(err))
}

func TestLocate(t *testing.T) {
	cfgPath, outDir := writeConfig(t)

	out, err := runCLI(t, "-c", cfgPath, "locate")
	require.NoError(t, err)
	require.Contains(t, out, "hello.html")
	require.Contains(t, out, "garden.html")
	require.Contains(t, out, "3 located, 2 parsed, 1 skipped")
	require.NotContains(t, out, "garden.org")
	require.NoDirExists(t, outDir)
}

func TestServe_MissingOutput(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	_, err := runCLI(t, "-c", cfgPath, "serve", "-o", filepath.Join(t.TempDir(), "nothing"))
	require.Error(t, err)
	require.Equal(t, 3, exitCode(err))
}

func TestLogLevel(t *testing.T) {
	t.Setenv(LogLevelEnv, "")
	c := &CLI{}
	require.Equal(t, "INFO", c.logLevel("").String())
	require.Equal(t, "WARN", c.logLevel("warn").String())

	t.Setenv(LogLevelEnv, "error")
	require.Equal(t, "ERROR", c.logLevel("debug").String())

	c.Verbose = true
	require.Equal(t, "DEBUG", c.logLevel("error").String())
}
