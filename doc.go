// Package filemap keeps track of which parts of a sparse file hold data.
//
// A sparse file of N units is split into sections. Data sections are backed
// by real bytes, while holes are unallocated and read back as zeros. A file
// with 100 units, where only the first 10 have been written, looks like:
//
//	0      10                                               100
//	+------+-------------------------------------------------+
//	| data |                       hole                      |
//	+------+-------------------------------------------------+
//
// Writing 25 units at offset 50 splits the hole, and punching a 5 unit hole
// at offset 60 splits the new data section:
//
//	0      10             50     60     65     75             100
//	+------+--------------+------+------+------+--------------+
//	| data |     hole     | data | hole | data |     hole     |
//	+------+--------------+------+------+------+--------------+
//
// Neighbouring sections of the same type are always joined, so writing 5
// units at offset 60 restores the previous picture. Tools like backup
// software use the map to copy only the data sections.
//
// Mark operations (Map.Data, Map.Hole) never return errors. A mark outside
// the file is ignored and the error is kept until the next Map.CheckError,
// so a caller can apply a batch of marks and check once:
//
//	m, err := filemap.New(100)
//	if err != nil {
//		return err
//	}
//	defer m.Close()
//
//	m.Data(0, 10)
//	m.Data(50, 25)
//	m.Hole(60, 5)
//	if err := m.CheckError(); err != nil {
//		return err
//	}
//	fmt.Print(m)
//
// which prints:
//
//	data: 10
//	hole: 40
//	data: 10
//	hole: 5
//	data: 10
//	hole: 25
package filemap
