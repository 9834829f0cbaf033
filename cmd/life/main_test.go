package main

import (
	"bytes"
	"testing"
)

func TestNewLoggerLeavesStdoutToBoard(t *testing.T) {
	var stdout, stderr bytes.Buffer
	newLogger(true, &stdout, &stderr).Generation(4, 7)
	if stdout.Len() != 0 {
		t.Fatalf("stdout = %q, want empty while printing", stdout.String())
	}
	if !bytes.Contains(stderr.Bytes(), []byte("[GEN:4]")) {
		t.Fatalf("stderr = %q", stderr.String())
	}

	stdout.Reset()
	stderr.Reset()
	newLogger(false, &stdout, &stderr).Generation(4, 7)
	if !bytes.Contains(stdout.Bytes(), []byte("[GEN:4]")) || stderr.Len() != 0 {
		t.Fatalf("stdout = %q, stderr = %q", stdout.String(), stderr.String())
	}
}
