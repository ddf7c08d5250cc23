package printer

import (
	"context"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRow(t *testing.T) {
	doc := NewDocument(32)
	doc.Row("Chicken (Half)", "2", "300.00")

	out := string(doc.Bytes()[2:])
	line := strings.TrimSuffix(out, "\n")
	assert.Len(t, line, 32)
	assert.True(t, strings.HasPrefix(line, "Chicken (Half)"))
	assert.True(t, strings.HasSuffix(line, "   2  300.00"))
}

func TestDocumentRowTruncatesLongNames(t *testing.T) {
	doc := NewDocument(32)
	doc.Row("Special Order (1 Kg) Extra Spicy", "1", "400.00")

	line := strings.TrimSuffix(string(doc.Bytes()[2:]), "\n")
	assert.Len(t, line, 32)
	assert.True(t, strings.HasPrefix(line, "Special Order (1 Kg)"))
}

func TestDocumentKeyValue(t *testing.T) {
	doc := NewDocument(20)
	doc.KeyValue("TOTAL:", "Rs 750.00")

	line := strings.TrimSuffix(string(doc.Bytes()[2:]), "\n")
	assert.Equal(t, "TOTAL:     Rs 750.00", line)
	assert.Equal(t, 20, doc.Width())
}

func TestNewDocumentDefaultsWidth(t *testing.T) {
	assert.Equal(t, 32, NewDocument(0).Width())
	assert.Equal(t, []byte{ESC, '@'}, NewDocument(48).Bytes())
}

func TestNew(t *testing.T) {
	p, err := New(Options{Type: "none"})
	require.NoError(t, err)
	require.NoError(t, p.Print(context.Background(), []byte("job")))
	assert.False(t, p.IsConnected())

	null, ok := p.(*NullPrinter)
	require.True(t, ok)
	job, count := null.LastJob()
	assert.Equal(t, "job", string(job))
	assert.Equal(t, 1, count)

	_, err = New(Options{Type: "usb"})
	assert.Error(t, err)
	_, err = New(Options{Type: "network"})
	assert.Error(t, err)
	_, err = New(Options{Type: "bluetooth"})
	assert.Error(t, err)

	p, err = New(Options{Type: "usb", USBPath: "/dev/null"})
	require.NoError(t, err)
	assert.NoError(t, p.Print(context.Background(), []byte("x")))
}

func TestNetworkPrinter(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	received := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		data, _ := io.ReadAll(conn)
		received <- data
	}()

	job := NewDocument(32).Text("PARCEL ORDER #1").PartialCut().Bytes()
	p := NewNetworkPrinter(ln.Addr().String(), time.Second)
	require.NoError(t, p.Print(context.Background(), job))

	select {
	case got := <-received:
		assert.Equal(t, job, got)
	case <-time.After(2 * time.Second):
		t.Fatal("printer received nothing")
	}
}

func TestNetworkPrinterUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	p := NewNetworkPrinter(addr, 200*time.Millisecond)
	assert.False(t, p.IsConnected())
	assert.ErrorContains(t, p.Print(context.Background(), []byte("x")), "failed to connect")
}
