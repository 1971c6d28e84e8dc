package vulnerabilities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCSV_HeaderAndRows(t *testing.T) {
	content := []byte("IP Address,CVE,Plugin ID,Severity,Plugin Name,Description\n" +
		"10.0.0.1,CVE-2024-1234,19506,High,Apache Flaw,Remote code execution\n" +
		"10.0.0.2,CVE-2023-9999,10180,Low,Ping Host,ICMP reachable\n")

	rows, err := ParseCSV(content)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, "10.0.0.1", rows[0]["IP Address"])
	require.Equal(t, "CVE-2024-1234", rows[0]["CVE"])
	require.Equal(t, "10.0.0.2", rows[1]["IP Address"])
}

func TestParseCSV_SkipsBlankLines(t *testing.T) {
	content := []byte("IP Address,Severity\n\n10.0.0.1,High\n\n10.0.0.2,Low\n")

	rows, err := ParseCSV(content)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestParseCSV_RaggedRowsTolerated(t *testing.T) {
	content := []byte("IP Address,CVE,Severity\n10.0.0.1,CVE-2024-1\n")

	rows, err := ParseCSV(content)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "CVE-2024-1", rows[0]["CVE"])
	require.Equal(t, "", rows[0]["Severity"])
}

func TestParseCSV_EmptyInput(t *testing.T) {
	rows, err := ParseCSV([]byte(""))
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestParseCSV_UnterminatedQuote(t *testing.T) {
	content := []byte("IP Address,Description\n10.0.0.1,\"unterminated\n")

	_, err := ParseCSV(content)
	require.Error(t, err)
}

func TestMapRow_AllColumns(t *testing.T) {
	row := map[string]string{
		"IP Address":  "10.0.0.1",
		"CVE":         "CVE-2024-1234",
		"Plugin ID":   "19506",
		"Severity":    "High",
		"Plugin Name": "Apache Flaw",
		"Description": "Remote code execution",
	}

	rec := MapRow(row)
	require.Equal(t, "10.0.0.1", rec.IPAddress)
	require.Equal(t, "CVE-2024-1234", rec.CVE)
	require.Equal(t, "High", rec.Severity)
	require.Equal(t, "Apache Flaw", rec.PluginName)
	require.Equal(t, "Remote code execution", rec.Description)
	require.Equal(t, "VulnerabilityRecord", rec.ObjType)
}

func TestMapRow_CVEFallsBackToPluginID(t *testing.T) {
	row := map[string]string{
		"IP Address":  "10.0.0.1",
		"CVE":         "",
		"Plugin ID":   "19506",
		"Severity":    "High",
		"Plugin Name": "X",
		"Description": "Y",
	}

	rec := MapRow(row)
	require.Equal(t, "19506", rec.CVE)
}

func TestMapRow_MissingColumnsLeaveFieldsEmpty(t *testing.T) {
	rec := MapRow(map[string]string{"Severity": "Critical"})
	require.Equal(t, "", rec.IPAddress)
	require.Equal(t, "", rec.CVE)
	require.Equal(t, "Critical", rec.Severity)
}

func TestMapRows_PreservesOrderAndStampsUploadID(t *testing.T) {
	rows := []map[string]string{
		{"IP Address": "10.0.0.1"},
		{"IP Address": "10.0.0.2"},
		{"IP Address": "10.0.0.3"},
	}

	records := MapRows(rows, "batch-1")
	require.Len(t, records, 3)
	for i, rec := range records {
		require.Equal(t, rows[i]["IP Address"], rec.IPAddress)
		require.Equal(t, "batch-1", rec.UploadID)
	}
}
