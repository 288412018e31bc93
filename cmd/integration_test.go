package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/KaramelBytes/petreg/internal/analysis"
)

// resetFlags clears values and Changed state that stick across Execute calls.
func resetFlags(cmds ...*cobra.Command) {
	for _, c := range cmds {
		for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
			fs.VisitAll(func(fl *pflag.Flag) {
				_ = fl.Value.Set(fl.DefValue)
				fl.Changed = false
			})
		}
	}
}

// runCmd executes the root command with args and returns its stdout.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd, plotCmd, inspectCmd, serveCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// isolate points HOME at a temp dir and writes the scenario dataset.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	p := filepath.Join(home, "pets.csv")
	content := "기준년도,시군명,읍면동명,cnt\n2023,A,X,10\n2023,A,Y,5\n2023,B,Z,7\n"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return p
}

func TestCLI_PlotAllRegions(t *testing.T) {
	data := isolate(t)
	out, err := runCmd(t, "plot", "--data", data, "--encoding", "utf-8")
	if err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	for _, want := range []string{"📍 전체 - cnt 현황", "합계는 22 입니다.", "15", "7"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Index(out, "| A") > strings.Index(out, "| B") {
		t.Fatalf("expected A before B:\n%s", out)
	}
}

func TestCLI_PlotJSONSingleRegion(t *testing.T) {
	data := isolate(t)
	out, err := runCmd(t, "plot", "--data", data, "--encoding", "utf-8", "--region", "A", "--metric", "cnt", "--json")
	if err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	var v analysis.View
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if v.RunID == "" {
		t.Fatalf("expected a run id")
	}
	if v.Result.XAxis != "읍면동명" || v.Result.Total != 15 {
		t.Fatalf("unexpected result: %+v", v.Result)
	}
	if len(v.Result.Rows) != 2 || v.Result.Rows[0].Label != "X" || v.Result.Rows[1].Label != "Y" {
		t.Fatalf("unexpected rows: %+v", v.Result.Rows)
	}
}

func TestCLI_PlotWritesArtifacts(t *testing.T) {
	data := isolate(t)
	dir := t.TempDir()
	chart := filepath.Join(dir, "chart.svg")
	book := filepath.Join(dir, "result.xlsx")
	report := filepath.Join(dir, "report.md")
	if _, err := runCmd(t, "plot", "--data", data, "--encoding", "utf-8",
		"-o", chart, "--xlsx", book, "--report", report); err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	b, err := os.ReadFile(chart)
	if err != nil || !strings.Contains(string(b), "<svg") {
		t.Fatalf("expected svg chart, err=%v", err)
	}
	if _, err := os.Stat(book); err != nil {
		t.Fatalf("expected workbook: %v", err)
	}
	md, err := os.ReadFile(report)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(md), "| A | 15 |") {
		t.Fatalf("report missing rows:\n%s", md)
	}
}

func TestCLI_PlotRejectsUnknownChartFormat(t *testing.T) {
	data := isolate(t)
	_, err := runCmd(t, "plot", "--data", data, "--encoding", "utf-8", "-o", filepath.Join(t.TempDir(), "chart.gif"))
	if err == nil || !strings.Contains(err.Error(), "unsupported chart output") {
		t.Fatalf("expected unsupported output error, got %v", err)
	}
}

func TestCLI_PlotMissingFile(t *testing.T) {
	isolate(t)
	missing := filepath.Join(t.TempDir(), "반려동물등록현황.csv")
	_, err := runCmd(t, "plot", "--data", missing)
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if err.Error() != "파일을 찾을 수 없습니다: "+missing {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestCLI_PlotUnknownMetric(t *testing.T) {
	data := isolate(t)
	_, err := runCmd(t, "plot", "--data", data, "--encoding", "utf-8", "--metric", "기준년도")
	if err == nil || !strings.HasPrefix(err.Error(), "오류가 발생했습니다: ") {
		t.Fatalf("expected generic failure banner, got %v", err)
	}
}

func TestCLI_Inspect(t *testing.T) {
	data := isolate(t)
	out, err := runCmd(t, "inspect", "--data", data, "--encoding", "utf-8", "-n", "2")
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	for _, want := range []string{analysis.LoadedMessage, "(3 rows)", "Metrics: cnt", "Regions: 전체, A, B"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "| Z") {
		t.Fatalf("preview should stop after 2 rows:\n%s", out)
	}
}

func TestCLI_ConfigSetShow(t *testing.T) {
	isolate(t)
	if _, err := runCmd(t, "config", "set", "preview_rows", "3"); err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	if _, err := runCmd(t, "config", "set", "log_level", "loud"); err == nil {
		t.Fatalf("expected invalid log_level to fail")
	}
	if _, err := runCmd(t, "config", "set", "nope", "1"); err == nil {
		t.Fatalf("expected unknown key to fail")
	}
	out, err := runCmd(t, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out, "preview_rows: 3") || !strings.Contains(out, "encoding: cp949") {
		t.Fatalf("unexpected config:\n%s", out)
	}
}
