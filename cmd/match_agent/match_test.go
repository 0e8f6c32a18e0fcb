package main

import (
	"encoding/json"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-matcher/internal/types"
)

const testCandidateJSON = `{
	"id": "cand-1",
	"name": "Test Candidate",
	"skills": ["python", "docker", "postgresql"],
	"experience": "5 years"
}`

const testJobJSON = `{
	"id": "job-1",
	"title": "Backend Engineer",
	"skills": ["python", "docker", "kubernetes"],
	"experience_level": "Senior"
}`

func TestMatchCommand_TaxonomyStrategy(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	candidatePath := writeTestFile(t, tmpDir, "candidate.json", testCandidateJSON)
	jobPath := writeTestFile(t, tmpDir, "job.json", testJobJSON)

	cmd := exec.Command(binaryPath, "match",
		"--candidate", candidatePath,
		"--job", jobPath,
		"--strategy", "taxonomy")
	output, err := cmd.Output()
	require.NoError(t, err)

	var result types.MatchResult
	require.NoError(t, json.Unmarshal(output, &result))
	assert.Equal(t, "cand-1", result.CandidateID)
	assert.Equal(t, "job-1", result.JobID)
	assert.Greater(t, result.OverallScore, 0.0)
	assert.Contains(t, result.MissingSkills, "kubernetes")
}

func TestMatchCommand_MissingJob(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	candidatePath := writeTestFile(t, tmpDir, "candidate.json", testCandidateJSON)

	cmd := exec.Command(binaryPath, "match", "--candidate", candidatePath, "--strategy", "taxonomy")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "either --job or --job-url must be provided")
}

func TestMatchCommand_BothJobFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	candidatePath := writeTestFile(t, tmpDir, "candidate.json", testCandidateJSON)
	jobPath := writeTestFile(t, tmpDir, "job.json", testJobJSON)

	cmd := exec.Command(binaryPath, "match",
		"--candidate", candidatePath,
		"--job", jobPath,
		"--job-url", "https://example.com/jobs/1",
		"--strategy", "taxonomy")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestMatchCommand_EmptyCandidate(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	candidatePath := writeTestFile(t, tmpDir, "candidate.json", `{"id": "cand-1"}`)
	jobPath := writeTestFile(t, tmpDir, "job.json", testJobJSON)

	cmd := exec.Command(binaryPath, "match",
		"--candidate", candidatePath,
		"--job", jobPath,
		"--strategy", "taxonomy")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "no resume text and no skills")
}

func TestMatchCommand_EmbeddingWithoutAPIKey(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	candidatePath := writeTestFile(t, tmpDir, "candidate.json", testCandidateJSON)
	jobPath := writeTestFile(t, tmpDir, "job.json", testJobJSON)

	cmd := exec.Command(binaryPath, "match",
		"--candidate", candidatePath,
		"--job", jobPath,
		"--strategy", "embedding")
	cmd.Env = []string{"PATH=/usr/bin:/bin"} // no GEMINI_API_KEY
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "embedding strategy requires")
}

func TestMatchCommand_OutputFile(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	candidatePath := writeTestFile(t, tmpDir, "candidate.json", testCandidateJSON)
	jobPath := writeTestFile(t, tmpDir, "job.json", testJobJSON)
	outPath := tmpDir + "/result.json"

	cmd := exec.Command(binaryPath, "match",
		"--candidate", candidatePath,
		"--job", jobPath,
		"--strategy", "taxonomy",
		"--out", outPath)
	_, err := cmd.Output()
	require.NoError(t, err)

	data := readTestFile(t, outPath)
	var result types.MatchResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "cand-1", result.CandidateID)
}
