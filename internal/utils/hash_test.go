// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/site-settings/models"
)

func TestInitHasherPoolAndHash(t *testing.T) {
	key := "secret-key"
	InitHasherPool(key)

	data := []byte("test-data")

	sum1 := Hash(data)
	sum2 := Hash(data)

	if len(sum1) == 0 {
		t.Fatal("hash result is empty")
	}

	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	// verify against direct HMAC computation
	h := hmac.New(sha256.New, []byte(key))
	h.Write(data)
	expected := h.Sum(nil)

	if !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

const testHashKey = "test-secret-key"

func TestHash_WithRealList(t *testing.T) {
	InitHasherPool(testHashKey)

	list := models.ItemList{
		{ID: "1", Name: "فيسبوك", NameEn: "Facebook", Icon: "Facebook", URL: "https://facebook.com", IconColor: "text-white", IconBg: "bg-blue-600", Visible: true},
	}

	// Сериализуем список так же, как это делает клиент
	payloadBytes, err := json.Marshal(list)
	if err != nil {
		t.Fatalf("failed to marshal list: %v", err)
	}

	got := hex.EncodeToString(Hash(payloadBytes))

	// Эталонный хеш считаем напрямую через crypto/hmac
	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(payloadBytes)
	want := hex.EncodeToString(mac.Sum(nil))

	if got != want {
		t.Errorf("Hash mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}

// TestHash_DifferentKeys проверяет что разные ключи дают разные хеши для одного списка
func TestHash_DifferentKeys(t *testing.T) {
	payloadBytes := []byte(`[{"id":"1"}]`)

	InitHasherPool("key-one")
	hash1 := hex.EncodeToString(Hash(payloadBytes))

	InitHasherPool("key-two")
	hash2 := hex.EncodeToString(Hash(payloadBytes))

	if hash1 == hash2 {
		t.Error("different keys must produce different hashes for the same payload")
	}
}

// TestHashJSON_IgnoresWhitespace проверяет что форматирование JSON не влияет на хеш
func TestHashJSON_IgnoresWhitespace(t *testing.T) {
	compact := []byte(`[{"id":"1","visible":true}]`)
	pretty := []byte("[\n  {\"id\": \"1\", \"visible\": true}\n]")

	h1, err := HashJSON(compact, testHashKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h2, err := HashJSON(pretty, testHashKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h1 != h2 {
		t.Errorf("whitespace must not change the hash:\n  h1: %s\n  h2: %s", h1, h2)
	}
}

// TestHashJSON_MatchesPooledHash проверяет что клиентская и серверная стороны считают одинаково
func TestHashJSON_MatchesPooledHash(t *testing.T) {
	InitHasherPool(testHashKey)
	raw := []byte(` [ {"id":"a"}, {"id":"b"} ] `)

	clientSide, err := HashJSON(raw, testHashKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	canonical, err := CanonicalJSON(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	serverSide := hex.EncodeToString(Hash(canonical))

	if clientSide != serverSide {
		t.Errorf("client %s != server %s", clientSide, serverSide)
	}
}

func TestHashJSON_InvalidJSON(t *testing.T) {
	if _, err := HashJSON([]byte(`{broken`), testHashKey); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestHashJSON_KeySensitive(t *testing.T) {
	first, err := HashJSON([]byte(`[{"id":"1"}]`), "k1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashJSON([]byte(`[{"id":"1"}]`), "k2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("different keys must produce different hashes")
	}
}
