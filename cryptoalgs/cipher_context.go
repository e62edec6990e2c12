package cryptoalgs

import (
	"fmt"
	"runtime"
	"sync"
)

// CipherContext applies a single-block cipher independently to every block
// of an already block-aligned buffer. Blocks never feed into each other, so
// any slice of them can be processed on any goroutine; the parallel path
// shards the buffer across runtime.NumCPU() workers.
//
// The context performs no padding: input whose length is not a multiple of
// the block size is rejected, never truncated or extended.
type CipherContext struct {
	cipher    ISymmetricCipher
	blockSize int
	parallel  bool
}

func NewCipherContext(cipher ISymmetricCipher, blockSize int, parallel bool) (*CipherContext, error) {
	if cipher == nil {
		return nil, fmt.Errorf("cipher implementation cannot be nil")
	}
	if blockSize <= 0 {
		return nil, fmt.Errorf("block size must be positive, got %d", blockSize)
	}

	return &CipherContext{
		cipher:    cipher,
		blockSize: blockSize,
		parallel:  parallel,
	}, nil
}

func (ctx *CipherContext) GetBlockSize() int {
	return ctx.blockSize
}

func (ctx *CipherContext) SetKey(key []uint8) error {
	return ctx.cipher.SetKey(key)
}

// EncryptBlocks encrypts each block of data independently.
func (ctx *CipherContext) EncryptBlocks(data []uint8) ([]uint8, error) {
	return ctx.process(data, ctx.cipher.EncryptBlock)
}

// DecryptBlocks decrypts each block of data independently.
func (ctx *CipherContext) DecryptBlocks(data []uint8) ([]uint8, error) {
	return ctx.process(data, ctx.cipher.DecryptBlock)
}

func (ctx *CipherContext) process(data []uint8, transform func([]uint8) ([]uint8, error)) ([]uint8, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("data cannot be empty")
	}
	if len(data)%ctx.blockSize != 0 {
		return nil, fmt.Errorf("data length %d is not a multiple of block size %d", len(data), ctx.blockSize)
	}

	numBlocks := len(data) / ctx.blockSize
	if ctx.parallel && numBlocks > 1 {
		return ctx.processParallel(data, numBlocks, transform)
	}

	result := make([]uint8, len(data))
	for i := 0; i < numBlocks; i++ {
		block, err := transform(data[i*ctx.blockSize : (i+1)*ctx.blockSize])
		if err != nil {
			return nil, fmt.Errorf("transform failed for block %d: %w", i, err)
		}
		copy(result[i*ctx.blockSize:], block)
	}

	return result, nil
}

func (ctx *CipherContext) processParallel(data []uint8, numBlocks int, transform func([]uint8) ([]uint8, error)) ([]uint8, error) {
	result := make([]uint8, len(data))

	numWorkers := runtime.NumCPU()
	if numWorkers > numBlocks {
		numWorkers = numBlocks
	}
	blocksPerWorker := (numBlocks + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	errors := make(chan error, numWorkers)

	for w := 0; w < numWorkers; w++ {
		startBlock := w * blocksPerWorker
		endBlock := startBlock + blocksPerWorker
		if endBlock > numBlocks {
			endBlock = numBlocks
		}
		if startBlock >= numBlocks {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()

			for i := start; i < end; i++ {
				block, err := transform(data[i*ctx.blockSize : (i+1)*ctx.blockSize])
				if err != nil {
					errors <- fmt.Errorf("transform failed for block %d: %w", i, err)
					return
				}
				copy(result[i*ctx.blockSize:], block)
			}
		}(startBlock, endBlock)
	}

	wg.Wait()
	close(errors)

	for err := range errors {
		return nil, err
	}

	return result, nil
}
