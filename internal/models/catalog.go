package models

// Fixed catalogs for the postal region covered by the registry. Jurisdiction
// and post office values submitted through the API are validated against
// these lists.

var Jurisdictions = []string{
	"ปจ.นครสวรรค์",
	"ปจ.อุทัยธานี",
	"ปจ.กำแพงเพชร",
	"ปจ.ตาก",
	"ปจ.สุโขทัย",
	"ปจ.พิษณุโลก",
	"ปจ.พิจิตร",
	"ปจ.เพชรบูรณ์",
}

var PostOffices = []string{
	"ที่ทำการไปรษณีย์นครสวรรค์",
	"ที่ทำการไปรษณีย์สวรรค์วิถี",
	"ที่ทำการไปรษณีย์จิรประวัติ",
	"ที่ทำการไปรษณีย์หนองบัว",
	"ที่ทำการไปรษณีย์ชุมแสง",
	"ที่ทำการไปรษณีย์พยุหะคีรี",
	"ที่ทำการไปรษณีย์ตาคลี",
	"ที่ทำการไปรษณีย์ลาดยาว",
	"ที่ทำการไปรษณีย์ท่าตะโก",
	"ที่ทำการไปรษณีย์โกรกพระ",
	"ที่ทำการไปรษณีย์บรรพตพิสัย",
	"ที่ทำการไปรษณีย์ตากฟ้า",
	"ที่ทำการไปรษณีย์ช่องแค",
	"ที่ทำการไปรษณีย์ไพศาลี",
	"ที่ทำการไปรษณีย์เก้าเลี้ยว",
	"ที่ทำการไปรษณีย์หนองเบน",
	"ที่ทำการไปรษณีย์ทับกฤช",
	"ที่ทำการไปรษณีย์จันเสน",
	"ที่ทำการไปรษณีย์อุทัยธานี",
	"ที่ทำการไปรษณีย์หนองฉาง",
	"ที่ทำการไปรษณีย์ทัพทัน",
	"ที่ทำการไปรษณีย์หนองขาหย่าง",
	"ที่ทำการไปรษณีย์บ้านไร่",
	"ที่ทำการไปรษณีย์สว่างอารมณ์",
	"ที่ทำการไปรษณีย์ลานสัก",
	"ที่ทำการไปรษณีย์เขาบางแกรก",
	"ที่ทำการไปรษณีย์เมืองการุ้ง",
	"ที่ทำการไปรษณีย์กำแพงเพชร",
	"ที่ทำการไปรษณีย์พรานกระต่าย",
	"ที่ทำการไปรษณีย์คลองขลุง",
	"ที่ทำการไปรษณีย์ขาณุวรลักษบุรี",
	"ที่ทำการไปรษณีย์สลกบาตร",
	"ที่ทำการไปรษณีย์ไทรงาม",
	"ที่ทำการไปรษณีย์ปากดง",
	"ที่ทำการไปรษณีย์ลานกระบือ",
	"ที่ทำการไปรษณีย์คลองลาน",
	"ที่ทำการไปรษณีย์ทุ่งทราย",
	"ที่ทำการไปรษณีย์ระหาน",
	"ที่ทำการไปรษณีย์ตาก",
	"ที่ทำการไปรษณีย์แม่สอด",
	"ที่ทำการไปรษณีย์อินทรคีรี",
	"ที่ทำการไปรษณีย์บ้านตาก",
	"ที่ทำการไปรษณีย์สามเงา",
	"ที่ทำการไปรษณีย์แม่ระมาด",
	"ที่ทำการไปรษณีย์ท่าสองยาง",
	"ที่ทำการไปรษณีย์พบพระ",
	"ที่ทำการไปรษณีย์อุ้มผาง",
	"ที่ทำการไปรษณีย์วังเจ้า",
	"ที่ทำการไปรษณีย์สุโขทัย",
	"ที่ทำการไปรษณีย์สวรรคโลก",
	"ที่ทำการไปรษณีย์ศรีสำโรง",
	"ที่ทำการไปรษณีย์ศรีสัชนาลัย",
	"ที่ทำการไปรษณีย์บ้านด่านลานหอย",
	"ที่ทำการไปรษณีย์ทุ่งเสลี่ยม",
	"ที่ทำการไปรษณีย์คีรีมาศ",
	"ที่ทำการไปรษณีย์กงไกรลาศ",
	"ที่ทำการไปรษณีย์ศรีนคร",
	"ที่ทำการไปรษณีย์ท่าชัย",
	"ที่ทำการไปรษณีย์เมืองเก่า",
	"ที่ทำการไปรษณีย์บ้านสวน",
	"ที่ทำการไปรษณีย์บ้านใหม่ไชยมงคล",
	"ที่ทำการไปรษณีย์พิษณุโลก",
	"ที่ทำการไปรษณีย์อรัญญิก",
	"ที่ทำการไปรษณีย์บางกระทุ่ม",
	"ที่ทำการไปรษณีย์นครไทย",
	"ที่ทำการไปรษณีย์วังทอง",
	"ที่ทำการไปรษณีย์บางระกำ",
	"ที่ทำการไปรษณีย์พรหมพิราม",
	"ที่ทำการไปรษณีย์วัดโบสถ์",
	"ที่ทำการไปรษณีย์ชาติตระการ",
	"ที่ทำการไปรษณีย์หนองตม",
	"ที่ทำการไปรษณีย์เนินมะปราง",
	"ที่ทำการไปรษณีย์เนินกุ่ม",
	"ที่ทำการไปรษณีย์แก่งโสภา",
	"ที่ทำการไปรษณีย์วัดพริก",
	"ที่ทำการไปรษณีย์ชุมแสงสงคราม",
	"ที่ทำการไปรษณีย์พิจิตร",
	"ที่ทำการไปรษณีย์ตะพานหิน",
	"ที่ทำการไปรษณีย์บางมูลนาก",
	"ที่ทำการไปรษณีย์โพทะเล",
	"ที่ทำการไปรษณีย์สามง่าม",
	"ที่ทำการไปรษณีย์ทับคล้อ",
	"ที่ทำการไปรษณีย์สากเหล็ก",
	"ที่ทำการไปรษณีย์หัวดง",
	"ที่ทำการไปรษณีย์วังทรายพูน",
	"ที่ทำการไปรษณีย์โพธิ์ประทับช้าง",
	"ที่ทำการไปรษณีย์วังตะกู",
	"ที่ทำการไปรษณีย์กำแพงดิน",
	"ที่ทำการไปรษณีย์เขาทราย",
	"ที่ทำการไปรษณีย์เพชรบูรณ์",
	"ที่ทำการไปรษณีย์หล่มสัก",
	"ที่ทำการไปรษณีย์หล่มเก่า",
	"ที่ทำการไปรษณีย์วิเชียรบุรี",
	"ที่ทำการไปรษณีย์หนองไผ่",
	"ที่ทำการไปรษณีย์ชนแดน",
	"ที่ทำการไปรษณีย์บึงสามพัน",
	"ที่ทำการไปรษณีย์ศรีเทพ",
	"ที่ทำการไปรษณีย์พุเตย",
	"ที่ทำการไปรษณีย์ดงขุย",
	"ที่ทำการไปรษณีย์วังชมภู",
	"ที่ทำการไปรษณีย์นาเฉลียง",
	"ที่ทำการไปรษณีย์วังพิกุล",
	"ที่ทำการไปรษณีย์วังโป่ง",
	"ที่ทำการไปรษณีย์ท่าพล",
	"ที่ทำการไปรษณีย์น้ำหนาว",
	"ที่ทำการไปรษณีย์เขาค้อ",
	"ที่ทำการไปรษณีย์แคมป์สน",
}

func IsKnownJurisdiction(jurisdiction string) bool {
	for _, j := range Jurisdictions {
		if j == jurisdiction {
			return true
		}
	}
	return false
}

func IsKnownPostOffice(postOffice string) bool {
	for _, po := range PostOffices {
		if po == postOffice {
			return true
		}
	}
	return false
}
