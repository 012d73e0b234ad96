package mersenne

import (
	"errors"
	"testing"
)

func testPartitions() []string {
	return []string{"node-a", "node-b", "node-c", "node-d", "node-e"}
}

func TestPartitioner_Construction(t *testing.T) {
	if _, err := NewPartitioner(nil, M61); !errors.Is(err, ErrNoPartitions) {
		t.Errorf("empty partitioner: got %v, want ErrNoPartitions", err)
	}
	if _, err := NewPartitioner(testPartitions(), 6); !errors.Is(err, ErrInvalidConstant) {
		t.Errorf("m=6: got %v, want ErrInvalidConstant", err)
	}
	if _, err := NewPartitioner(testPartitions(), M61); err != nil {
		t.Errorf("valid construction failed: %v", err)
	}
}

func TestPartitioner_PickDeterministic(t *testing.T) {
	p, err := NewPartitioner(testPartitions(), M61)
	if err != nil {
		t.Fatalf("NewPartitioner returned error: %v", err)
	}

	known := make(map[string]bool)
	for _, name := range testPartitions() {
		known[name] = true
	}

	for i := 0; i < 200; i++ {
		keyHash := Sum64(uint64(i) * 0x9E3779B185EBCA87)
		owner := p.Pick(keyHash)
		if !known[owner] {
			t.Fatalf("Pick returned unknown partition %q", owner)
		}
		if again := p.Pick(keyHash); again != owner {
			t.Fatalf("Pick not deterministic: %q then %q", owner, again)
		}
	}
}

func TestPartitioner_AllPartitionsReachable(t *testing.T) {
	p, err := NewPartitioner(testPartitions(), M61)
	if err != nil {
		t.Fatalf("NewPartitioner returned error: %v", err)
	}

	owned := make(map[string]int)
	for i := 0; i < 5000; i++ {
		owned[p.Pick(Sum64(uint64(i)))]++
	}
	for _, name := range testPartitions() {
		if owned[name] == 0 {
			t.Errorf("partition %q never selected across 5000 keys", name)
		}
	}
}

// the rendezvous property: removing one partition only remaps the keys that
// partition owned; every other key keeps its owner.
func TestPartitioner_MinimalDisruption(t *testing.T) {
	full, err := NewPartitioner(testPartitions(), M61)
	if err != nil {
		t.Fatalf("NewPartitioner returned error: %v", err)
	}

	const removed = "node-c"
	var reduced []string
	for _, name := range testPartitions() {
		if name != removed {
			reduced = append(reduced, name)
		}
	}
	without, err := NewPartitioner(reduced, M61)
	if err != nil {
		t.Fatalf("NewPartitioner returned error: %v", err)
	}

	for i := 0; i < 2000; i++ {
		keyHash := Sum64(uint64(i) * 0xC2B2AE3D27D4EB4F)
		before := full.Pick(keyHash)
		after := without.Pick(keyHash)
		if before != removed && before != after {
			t.Fatalf("key %#x moved from %q to %q although %q was removed",
				keyHash, before, after, removed)
		}
	}
}

func TestPartitioner_PickN(t *testing.T) {
	p, err := NewPartitioner(testPartitions(), M61)
	if err != nil {
		t.Fatalf("NewPartitioner returned error: %v", err)
	}

	keyHash := Sum64(12345)

	if got := p.PickN(keyHash, 0); got != nil {
		t.Errorf("PickN(_, 0) = %v, want nil", got)
	}

	owners := p.PickN(keyHash, 3)
	if len(owners) != 3 {
		t.Fatalf("PickN(_, 3) returned %d names", len(owners))
	}
	if owners[0] != p.Pick(keyHash) {
		t.Errorf("PickN rank 0 = %q, Pick = %q", owners[0], p.Pick(keyHash))
	}
	seen := make(map[string]bool)
	for _, name := range owners {
		if seen[name] {
			t.Errorf("PickN returned %q twice", name)
		}
		seen[name] = true
	}

	// n beyond the partition count clamps
	if got := p.PickN(keyHash, 100); len(got) != len(testPartitions()) {
		t.Errorf("PickN(_, 100) returned %d names, want %d", len(got), len(testPartitions()))
	}
}

func TestPartitioner_PartitionsCopy(t *testing.T) {
	p, err := NewPartitioner(testPartitions(), M61)
	if err != nil {
		t.Fatalf("NewPartitioner returned error: %v", err)
	}
	names := p.Partitions()
	names[0] = "mutated"
	if p.Partitions()[0] != "node-a" {
		t.Error("Partitions() exposed internal state")
	}
}

func BenchmarkPartitionerPick(b *testing.B) {
	p, err := NewPartitioner(testPartitions(), M61)
	if err != nil {
		b.Fatalf("NewPartitioner returned error: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Pick(uint64(i))
	}
}
